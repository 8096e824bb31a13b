package daemon

import "github.com/shopspring/decimal"

// Unspent describes one spendable transaction output owned by the
// wallet, as reported by listunspent.
type Unspent struct {
	TxID          string          `json:"txid"`
	Vout          uint32          `json:"vout"`
	Address       string          `json:"address"`
	Account       string          `json:"account"`
	ScriptPubKey  string          `json:"scriptPubKey"`
	Amount        decimal.Decimal `json:"amount"`
	Confirmations int64           `json:"confirmations"`
	Spendable     bool            `json:"spendable"`
}

// Transaction is the wallet's view of a transaction, as reported by
// gettransaction.
type Transaction struct {
	TxID          string          `json:"txid"`
	Amount        decimal.Decimal `json:"amount"`
	Fee           decimal.Decimal `json:"fee"`
	Confirmations int64           `json:"confirmations"`
	BlockHash     string          `json:"blockhash"`
	BlockIndex    int64           `json:"blockindex"`
	Time          int64           `json:"time"`
	TimeReceived  int64           `json:"timereceived"`
	Details       []TxDetail      `json:"details"`
}

// TxDetail is one input or output of a wallet transaction.
type TxDetail struct {
	Account  string          `json:"account"`
	Address  string          `json:"address"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Fee      decimal.Decimal `json:"fee"`
}

// AddressInfo is the daemon's judgement of an address, as reported by
// validateaddress.
type AddressInfo struct {
	IsValid      bool   `json:"isvalid"`
	Address      string `json:"address"`
	IsMine       bool   `json:"ismine"`
	IsScript     bool   `json:"isscript"`
	IsCompressed bool   `json:"iscompressed"`
	Account      string `json:"account"`
}
