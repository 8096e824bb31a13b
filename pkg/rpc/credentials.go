package rpc

import (
	"fmt"
	"net/url"
)

// Credentials identify a daemon endpoint and the HTTP Basic
// credentials accepted by it (the daemon scopes them to the realm
// "jsonrpc"). Credentials are a plain immutable value: construct them
// once and share them freely, including across concurrent calls.
//
// The validate tags let configuration layers check the fields with
// go-playground/validator before a client is ever constructed.
type Credentials struct {
	// Endpoint is the daemon's HTTP URL, e.g. "http://127.0.0.1:8332".
	Endpoint string `json:"endpoint" validate:"required,url"`
	// Username authenticates against the endpoint's authority.
	Username string `json:"username" validate:"required"`
	// Password authenticates against the endpoint's authority.
	Password string `json:"password"`
}

// parseEndpoint parses and sanity-checks the endpoint URL. A failure
// here is a configuration error: it is reported once, at client
// construction, before any network I/O.
func (c Credentials) parseEndpoint() (*url.URL, error) {
	parsed, err := url.Parse(c.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidEndpoint, parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidEndpoint)
	}
	return parsed, nil
}
