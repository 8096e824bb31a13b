// Package rpc implements the wire protocol spoken by a cryptocurrency
// daemon's JSON-RPC interface and a client for calling it.
//
// The protocol is JSON-RPC over a single authenticated HTTP POST per
// call. A request encodes to:
//
//	{"jsonrpc":"2.0","method":"getbalance","params":["*"],"id":1}
//
// and the daemon answers with a response envelope:
//
//	{"result": <any>, "error": null | {"code": <int>, "message": <string>}}
//
// The request id is always the constant 1: the daemon is called
// strictly one shot over synchronous HTTP, and request/response pairing
// comes from the call/return itself, never from id matching. Callers
// must not pipeline concurrent calls on one response stream expecting
// id-based demultiplexing; concurrent calls are simply independent
// HTTP requests.
//
// # Making calls
//
// Client is the single entry point. It is stateless and safe for
// concurrent use:
//
//	client, err := rpc.NewClient(rpc.Credentials{
//	    Endpoint: "http://127.0.0.1:8332",
//	    Username: "user",
//	    Password: "pass",
//	}, rpc.DefaultClientConfig)
//	if err != nil {
//	    // the endpoint URL is malformed; no network I/O was attempted
//	}
//
//	var count int64
//	if err := client.Call(ctx, "getblockcount", &count); err != nil {
//	    ...
//	}
//
// # Error handling
//
// A failed call surfaces one of two classified failures:
//
//   - *Error{Code, Message}: the daemon itself reported a JSON-RPC
//     error object. The daemon's own diagnostic is propagated as is.
//   - *ResultTypeError{Raw}: the response bytes could not be decoded
//     into the envelope or the expected result type. The exact bytes
//     are carried for inspection.
//
// Both are recovered with errors.As. Transport failures (dial errors,
// context cancellation) wrap the sentinel errors in error.go instead.
// Nothing in this package retries; every failure propagates to the
// caller.
//
// Note that the HTTP status code is never inspected: a daemon that
// answers 500 with a well-formed success envelope is treated as
// success. Only the envelope classifies the outcome.
package rpc
