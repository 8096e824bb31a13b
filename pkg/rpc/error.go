package rpc

import (
	"errors"
	"fmt"
)

// Client construction and transport error values. These are wrapped
// with %w so callers can test them with errors.Is.
var (
	// ErrInvalidEndpoint reports a malformed endpoint URL in the
	// credentials. It is returned by NewClient before any network I/O
	// is attempted and indicates a configuration bug, not a runtime
	// failure of the daemon.
	ErrInvalidEndpoint = fmt.Errorf("invalid daemon endpoint URL")

	// ErrBuildingRequest reports a failure to serialize the request
	// envelope or construct the HTTP request.
	ErrBuildingRequest = fmt.Errorf("error building request")

	// ErrSendingRequest reports a failure of the HTTP round-trip
	// itself: dial errors, context cancellation, connection resets.
	ErrSendingRequest = fmt.Errorf("error sending request")

	// ErrReadingResponse reports a failure to read the HTTP response
	// body.
	ErrReadingResponse = fmt.Errorf("error reading response body")
)

// Error is a JSON-RPC error reported by the daemon itself. The code
// and message are the daemon's own diagnostic, propagated unmodified.
//
// Example:
//
//	var rpcErr *rpc.Error
//	if errors.As(err, &rpcErr) {
//	    fmt.Printf("daemon rejected call: %d %s\n", rpcErr.Code, rpcErr.Message)
//	}
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("daemon error %d: %s", e.Code, e.Message)
}

// ResultTypeError reports a response that could not be decoded into
// the expected envelope or result type. It covers malformed JSON,
// envelopes missing the result/error fields, error objects missing
// their required fields, and result values that do not coerce to the
// caller's type. Raw holds the exact response bytes so the unexpected
// payload can be inspected.
type ResultTypeError struct {
	Raw []byte
}

// Error implements the error interface. The raw payload is truncated
// so a hostile or broken daemon cannot flood logs.
func (e *ResultTypeError) Error() string {
	const maxShown = 256
	raw := e.Raw
	if len(raw) > maxShown {
		raw = raw[:maxShown]
	}
	return fmt.Sprintf("unexpected daemon response: %s", raw)
}

// AsError unwraps err as a daemon-reported *Error, or returns nil.
func AsError(err error) *Error {
	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}
	return nil
}

// AsResultTypeError unwraps err as a *ResultTypeError, or returns nil.
func AsResultTypeError(err error) *ResultTypeError {
	var typeErr *ResultTypeError
	if errors.As(err, &typeErr) {
		return typeErr
	}
	return nil
}
