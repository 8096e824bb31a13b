package daemon

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/hashlattice/coinrpc/pkg/rpc"
)

// Client exposes the daemon's RPC methods as typed Go calls. It wraps
// an rpc.Client and shares its properties: stateless, blocking, safe
// for concurrent use.
type Client struct {
	rpc *rpc.Client
}

// New builds a daemon client with the default RPC configuration. The
// credentials' endpoint URL is validated here; a malformed URL fails
// construction before any network I/O.
func New(creds rpc.Credentials) (*Client, error) {
	return NewWithConfig(creds, rpc.DefaultClientConfig)
}

// NewWithConfig builds a daemon client with an explicit RPC
// configuration (custom HTTP client, logger, metrics).
func NewWithConfig(creds rpc.Credentials, cfg rpc.ClientConfig) (*Client, error) {
	rpcClient, err := rpc.NewClient(creds, cfg)
	if err != nil {
		return nil, err
	}
	return &Client{rpc: rpcClient}, nil
}

// RPC returns the underlying rpc.Client, for calling daemon methods
// that have no typed wrapper.
func (c *Client) RPC() *rpc.Client {
	return c.rpc
}

// GetBlockCount returns the height of the longest chain known to the
// daemon.
func (c *Client) GetBlockCount(ctx context.Context) (int64, error) {
	var count int64
	err := c.rpc.Call(ctx, "getblockcount", &count)
	return count, err
}

// GetBlockHash returns the hash of the block at the given height.
func (c *Client) GetBlockHash(ctx context.Context, height int64) (string, error) {
	var hash string
	err := c.rpc.Call(ctx, "getblockhash", &hash, height)
	return hash, err
}

// GetDifficulty returns the current proof-of-work difficulty.
func (c *Client) GetDifficulty(ctx context.Context) (decimal.Decimal, error) {
	var difficulty decimal.Decimal
	err := c.rpc.Call(ctx, "getdifficulty", &difficulty)
	return difficulty, err
}

// GetConnectionCount returns the number of peers the daemon is
// connected to.
func (c *Client) GetConnectionCount(ctx context.Context) (int64, error) {
	var count int64
	err := c.rpc.Call(ctx, "getconnectioncount", &count)
	return count, err
}

// GetBalance returns the wallet's total available balance.
func (c *Client) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := c.rpc.Call(ctx, "getbalance", &balance)
	return balance, err
}

// GetReceivedByAddress returns the total amount received by the given
// address in confirmed transactions.
func (c *Client) GetReceivedByAddress(ctx context.Context, address string) (decimal.Decimal, error) {
	var amount decimal.Decimal
	err := c.rpc.Call(ctx, "getreceivedbyaddress", &amount, address)
	return amount, err
}

// ListUnspent returns the wallet's spendable transaction outputs.
func (c *Client) ListUnspent(ctx context.Context) ([]Unspent, error) {
	var unspent []Unspent
	err := c.rpc.Call(ctx, "listunspent", &unspent)
	return unspent, err
}

// GetTransaction returns the wallet's view of the transaction with
// the given id.
func (c *Client) GetTransaction(ctx context.Context, txid string) (Transaction, error) {
	var tx Transaction
	err := c.rpc.Call(ctx, "gettransaction", &tx, txid)
	return tx, err
}

// GetNewAddress generates a fresh receiving address, filed under the
// given label.
func (c *Client) GetNewAddress(ctx context.Context, label string) (string, error) {
	var address string
	err := c.rpc.Call(ctx, "getnewaddress", &address, label)
	return address, err
}

// ValidateAddress asks the daemon to judge the given address.
func (c *Client) ValidateAddress(ctx context.Context, address string) (AddressInfo, error) {
	var info AddressInfo
	err := c.rpc.Call(ctx, "validateaddress", &info, address)
	return info, err
}

// SendToAddress sends amount to a single address and returns the
// transaction id. The amount travels as a bare JSON number
// (decimal.Decimal would marshal itself as a string, which the daemon
// rejects).
func (c *Client) SendToAddress(ctx context.Context, address string, amount decimal.Decimal) (string, error) {
	var txid string
	err := c.rpc.Call(ctx, "sendtoaddress", &txid, address, json.Number(amount.String()))
	return txid, err
}

// SendMany sends to several addresses in one transaction and returns
// the transaction id. The destinations travel as a JSON object keyed
// by address (see rpc.AddressAmounts).
func (c *Client) SendMany(ctx context.Context, fromAccount string, to rpc.AddressAmounts) (string, error) {
	var txid string
	err := c.rpc.Call(ctx, "sendmany", &txid, fromAccount, to)
	return txid, err
}

// BackupWallet asks the daemon to copy the wallet file to the given
// destination path on the daemon's host.
func (c *Client) BackupWallet(ctx context.Context, destination string) error {
	return c.rpc.Call(ctx, "backupwallet", nil, destination)
}

// Stop asks the daemon to shut down and returns its farewell message.
func (c *Client) Stop(ctx context.Context) (string, error) {
	var msg string
	err := c.rpc.Call(ctx, "stop", &msg)
	return msg, err
}
