package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/hashlattice/coinrpc/pkg/log"
)

// ClientConfig contains construction options for a Client. All fields
// are optional; zero values fall back to DefaultClientConfig.
type ClientConfig struct {
	// HTTPClient performs the round-trips. Timeouts, TLS settings and
	// connection pooling are entirely its concern; the RPC layer
	// imposes none of its own.
	HTTPClient *http.Client

	// Logger receives per-call diagnostics at debug level. Defaults
	// to the noop logger, which keeps the transport silent.
	Logger log.Logger

	// Metrics, when non-nil, instruments every call.
	Metrics *Metrics
}

// DefaultClientConfig uses the default http.Client and a silent
// logger.
var DefaultClientConfig = ClientConfig{}

// Client issues authenticated JSON-RPC calls against one daemon. It
// holds no mutable state, so a single Client is safe for concurrent
// use; overlapping calls are independent HTTP requests with no
// ordering or correlation between them.
type Client struct {
	transport *httpTransport
	logger    log.Logger
	metrics   *Metrics
}

// NewClient builds a client for the daemon identified by creds. The
// endpoint URL is parsed here: a malformed URL fails construction
// immediately, before any network I/O, because it is a configuration
// bug rather than a runtime condition.
func NewClient(creds Credentials, cfg ClientConfig) (*Client, error) {
	endpoint, err := creds.parseEndpoint()
	if err != nil {
		return nil, err
	}

	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	return &Client{
		transport: &httpTransport{
			endpoint: endpoint,
			username: creds.Username,
			password: creds.Password,
			httpc:    httpc,
		},
		logger:  logger.WithName("coinrpc"),
		metrics: cfg.Metrics,
	}, nil
}

// Endpoint returns the parsed daemon endpoint URL.
func (c *Client) Endpoint() *url.URL {
	endpoint := *c.transport.endpoint
	return &endpoint
}

// Call invokes method on the daemon with the given positional params
// and decodes the result field into result, which must be a non-nil
// pointer of the statically expected type. Pass nil to discard the
// result.
//
// Call blocks for the full round-trip and decode. It returns a
// *Error when the daemon reported a JSON-RPC error, a
// *ResultTypeError when the response could not be decoded, or a
// wrapped transport sentinel when no response arrived at all.
func (c *Client) Call(ctx context.Context, method string, result any, params ...any) error {
	// The call id exists only for log correlation. It never reaches
	// the wire, where the request id stays the constant 1.
	logger := c.logger.With("method", method, "call_id", uuid.NewString())

	c.metrics.observeRequest(method)
	err := c.call(ctx, logger, method, result, params)
	c.metrics.observeOutcome(method, err)
	if err != nil {
		logger.Debug("call failed", "error", err)
		return err
	}

	logger.Debug("call succeeded")
	return nil
}

// CallRaw is Call without result typing: the daemon's result field is
// returned as raw JSON. Useful for tooling that prints results
// verbatim and for methods without a typed wrapper.
func (c *Client) CallRaw(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.Call(ctx, method, &raw, params...); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) call(ctx context.Context, logger log.Logger, method string, result any, params []any) error {
	body, err := NewRequest(method, params...).Encode()
	if err != nil {
		// A parameter that cannot be marshaled is a caller bug, not a
		// daemon failure.
		return fmt.Errorf("%w: %w", ErrBuildingRequest, err)
	}

	logger.Debug("sending request", "bytes", len(body))
	raw, err := c.transport.post(ctx, body)
	if err != nil {
		return err
	}

	logger.Debug("received response", "bytes", len(raw))
	return DecodeResponse(raw, result)
}
