package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// AddressAmount pairs a destination address with the amount to send
// to it. Amounts use decimal.Decimal for arbitrary precision and
// encode as JSON numbers, matching what the daemon expects.
type AddressAmount struct {
	Address string
	Amount  decimal.Decimal
}

// AddressAmounts is the parameter shape used by send-to-many style
// daemon methods. The daemon wants a JSON object keyed by address, not
// an array of pairs, so the slice carries a custom encoder:
//
//	rpc.AddressAmounts{
//	    {Address: "1Addr", Amount: decimal.RequireFromString("1.5")},
//	    {Address: "2Addr", Amount: decimal.NewFromInt(2)},
//	}
//
// encodes to {"1Addr":1.5,"2Addr":2}.
//
// Addresses must be unique within the slice; a duplicate is a caller
// error and follows standard JSON object semantics (the last pair
// wins). This is an input-side adapter only - responses never decode
// into it.
type AddressAmounts []AddressAmount

// MarshalJSON implements json.Marshaler, emitting one object field
// per pair in slice order.
func (aa AddressAmounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pair := range aa {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pair.Address)
		if err != nil {
			return nil, fmt.Errorf("error marshalling address %q: %w", pair.Address, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(pair.Amount.String())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
