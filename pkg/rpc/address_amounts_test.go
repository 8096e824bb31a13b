package rpc_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashlattice/coinrpc/pkg/rpc"
)

func TestAddressAmountsMarshalJSON(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name     string
		pairs    rpc.AddressAmounts
		expected string
	}{
		{
			name:     "empty",
			pairs:    rpc.AddressAmounts{},
			expected: `{}`,
		},
		{
			name: "two addresses",
			pairs: rpc.AddressAmounts{
				{Address: "1Addr", Amount: decimal.RequireFromString("1.5")},
				{Address: "2Addr", Amount: decimal.RequireFromString("2.0")},
			},
			expected: `{"1Addr":1.5,"2Addr":2.0}`,
		},
		{
			name: "integer amount renders without fraction",
			pairs: rpc.AddressAmounts{
				{Address: "1Addr", Amount: decimal.NewFromInt(10)},
			},
			expected: `{"1Addr":10}`,
		},
		{
			name: "high precision survives",
			pairs: rpc.AddressAmounts{
				{Address: "1Addr", Amount: decimal.RequireFromString("0.00000001")},
			},
			expected: `{"1Addr":0.00000001}`,
		},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			body, err := json.Marshal(tc.pairs)
			require.NoError(t, err)
			assert.JSONEq(t, tc.expected, string(body))
		})
	}
}

// Amounts must encode as JSON numbers, not the quoted strings that
// decimal.Decimal produces on its own.
func TestAddressAmountsEncodeAsNumbers(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(rpc.AddressAmounts{
		{Address: "1Addr", Amount: decimal.RequireFromString("1.5")},
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, map[string]any{"1Addr": 1.5}, decoded)
}

// The adapter keeps working when nested inside a request's params.
func TestAddressAmountsInsideRequest(t *testing.T) {
	t.Parallel()

	pairs := rpc.AddressAmounts{
		{Address: "1Addr", Amount: decimal.RequireFromString("1.5")},
		{Address: "2Addr", Amount: decimal.RequireFromString("2.0")},
	}

	body, err := rpc.NewRequest("sendmany", "", pairs).Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","method":"sendmany","params":["",{"1Addr":1.5,"2Addr":2.0}],"id":1}`, string(body))
}
