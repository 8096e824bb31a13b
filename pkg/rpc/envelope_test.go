package rpc_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashlattice/coinrpc/pkg/rpc"
)

func TestRequestEncode(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name     string
		method   string
		params   []any
		expected string
	}{
		{
			name:     "no params",
			method:   "getblockcount",
			params:   nil,
			expected: `{"jsonrpc":"2.0","method":"getblockcount","params":[],"id":1}`,
		},
		{
			name:     "positional params",
			method:   "getblockhash",
			params:   []any{int64(12345)},
			expected: `{"jsonrpc":"2.0","method":"getblockhash","params":[12345],"id":1}`,
		},
		{
			name:     "mixed params",
			method:   "sendtoaddress",
			params:   []any{"1Addr", json.Number("1.5")},
			expected: `{"jsonrpc":"2.0","method":"sendtoaddress","params":["1Addr",1.5],"id":1}`,
		},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			body, err := rpc.NewRequest(tc.method, tc.params...).Encode()
			require.NoError(t, err)
			assert.JSONEq(t, tc.expected, string(body))
		})
	}
}

// Encoding then parsing a request recovers the exact envelope fields,
// including the constant protocol version and id.
func TestRequestRoundTrip(t *testing.T) {
	t.Parallel()

	body, err := rpc.NewRequest("getreceivedbyaddress", "1Addr", float64(6)).Encode()
	require.NoError(t, err)

	var decoded rpc.Request
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, "2.0", decoded.Version)
	assert.Equal(t, "getreceivedbyaddress", decoded.Method)
	assert.Equal(t, []any{"1Addr", float64(6)}, decoded.Params)
	assert.Equal(t, 1, decoded.ID)
}

func TestDecodeResponseSuccess(t *testing.T) {
	t.Parallel()

	t.Run("typed result", func(t *testing.T) {
		t.Parallel()

		var count int64
		err := rpc.DecodeResponse([]byte(`{"result": 832000, "error": null}`), &count)
		require.NoError(t, err)
		assert.Equal(t, int64(832000), count)
	})

	t.Run("structured result", func(t *testing.T) {
		t.Parallel()

		var info struct {
			IsValid bool   `json:"isvalid"`
			Address string `json:"address"`
		}
		err := rpc.DecodeResponse([]byte(`{"result": {"isvalid": true, "address": "1Addr"}, "error": null}`), &info)
		require.NoError(t, err)
		assert.True(t, info.IsValid)
		assert.Equal(t, "1Addr", info.Address)
	})

	t.Run("null result into raw message", func(t *testing.T) {
		t.Parallel()

		var raw json.RawMessage
		err := rpc.DecodeResponse([]byte(`{"result": null, "error": null}`), &raw)
		require.NoError(t, err)
		assert.Equal(t, json.RawMessage("null"), raw)
	})

	t.Run("discarded result", func(t *testing.T) {
		t.Parallel()

		err := rpc.DecodeResponse([]byte(`{"result": "ignored", "error": null}`), nil)
		assert.NoError(t, err)
	})
}

func TestDecodeResponseDaemonError(t *testing.T) {
	t.Parallel()

	var discard any
	err := rpc.DecodeResponse([]byte(`{"result": null, "error": {"code": -32601, "message": "Method not found"}}`), &discard)
	require.Error(t, err)

	rpcErr := rpc.AsError(err)
	require.NotNil(t, rpcErr)
	assert.Equal(t, -32601, rpcErr.Code)
	assert.Equal(t, "Method not found", rpcErr.Message)
}

func TestDecodeResponseResultTypeError(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name  string
		input string
	}{
		{name: "not JSON", input: `this is not JSON`},
		{name: "empty input", input: ``},
		{name: "top-level array", input: `[1, 2, 3]`},
		{name: "missing result field", input: `{"error": null}`},
		{name: "missing error field", input: `{"result": 42}`},
		{name: "error object missing code", input: `{"result": null, "error": {"message": "boom"}}`},
		{name: "error object missing message", input: `{"result": null, "error": {"code": -1}}`},
		{name: "error object missing both", input: `{"result": null, "error": {}}`},
		{name: "non-integer error code", input: `{"result": null, "error": {"code": "oops", "message": "boom"}}`},
		{name: "non-string error message", input: `{"result": null, "error": {"code": -1, "message": 7}}`},
		{name: "error is a string", input: `{"result": null, "error": "boom"}`},
		{name: "error is a number", input: `{"result": null, "error": -1}`},
		{name: "error is an array", input: `{"result": null, "error": [1]}`},
		{name: "result does not coerce", input: `{"result": "not a number", "error": null}`},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var count int64
			err := rpc.DecodeResponse([]byte(tc.input), &count)
			require.Error(t, err)
			assert.Nil(t, rpc.AsError(err))

			typeErr := rpc.AsResultTypeError(err)
			require.NotNil(t, typeErr)
			assert.Equal(t, []byte(tc.input), typeErr.Raw)
		})
	}
}
