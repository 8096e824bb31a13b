package rpc

import (
	"bytes"
	"encoding/json"
)

const (
	// protocolVersion is the value of the jsonrpc field on every
	// request. The daemon speaks the original 1.0-style protocol but
	// expects this marker.
	protocolVersion = "2.0"

	// requestID is the fixed id sent on every request. The client is
	// strictly synchronous, so responses are paired by the HTTP
	// call/return and the id carries no information. Kept constant on
	// purpose; see the package documentation.
	requestID = 1
)

// Request is the JSON-RPC request envelope. It is built per call,
// serialized, and discarded after transmission.
type Request struct {
	Version string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

// NewRequest builds a request envelope for the given method and
// positional parameters. A nil params slice encodes as the empty
// array, never as JSON null.
func NewRequest(method string, params ...any) Request {
	if params == nil {
		params = []any{}
	}

	return Request{
		Version: protocolVersion,
		Method:  method,
		Params:  params,
		ID:      requestID,
	}
}

// Encode serializes the request envelope to its wire form.
func (r Request) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// responseEnvelope mirrors the daemon's response object once the
// presence of both fields has been established.
type responseEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
}

// errorObject is used to probe a non-null error field. Pointer fields
// distinguish "absent" from "zero value": a daemon error object must
// carry both code and message.
type errorObject struct {
	Code    *int    `json:"code"`
	Message *string `json:"message"`
}

// DecodeResponse parses raw response bytes into the caller's expected
// result type. result must be a non-nil pointer; pass a
// *json.RawMessage to defer decoding.
//
// Classification rules:
//
//   - bytes that are not a JSON object with both result and error
//     fields fail with *ResultTypeError carrying the bytes;
//   - error: null is success, and result is unmarshaled into result
//     (a coercion failure is again *ResultTypeError);
//   - error: {...} must hold an integer code and a string message and
//     fails the call with *Error; an error object missing either
//     field, or an error field of any other JSON shape, is
//     indistinguishable from a structural decode failure and surfaces
//     as *ResultTypeError.
func DecodeResponse(raw []byte, result any) error {
	// Probe field presence first: an envelope without both fields is
	// malformed no matter what else it contains.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return &ResultTypeError{Raw: raw}
	}
	if _, ok := fields["result"]; !ok {
		return &ResultTypeError{Raw: raw}
	}
	if _, ok := fields["error"]; !ok {
		return &ResultTypeError{Raw: raw}
	}

	var envelope responseEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &ResultTypeError{Raw: raw}
	}

	if !isJSONNull(envelope.Error) {
		if !isJSONObject(envelope.Error) {
			return &ResultTypeError{Raw: raw}
		}

		var daemonErr errorObject
		if err := json.Unmarshal(envelope.Error, &daemonErr); err != nil {
			return &ResultTypeError{Raw: raw}
		}
		if daemonErr.Code == nil || daemonErr.Message == nil {
			return &ResultTypeError{Raw: raw}
		}

		return &Error{Code: *daemonErr.Code, Message: *daemonErr.Message}
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return &ResultTypeError{Raw: raw}
	}

	return nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
