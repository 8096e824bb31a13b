package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashlattice/coinrpc/pkg/log"
)

func TestParseParams(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name     string
		args     []string
		expected []any
	}{
		{name: "empty", args: nil, expected: []any{}},
		{name: "number", args: []string{"12345"}, expected: []any{float64(12345)}},
		{name: "boolean", args: []string{"true"}, expected: []any{true}},
		{name: "plain string", args: []string{"1Addr"}, expected: []any{"1Addr"}},
		{name: "quoted string", args: []string{`"true"`}, expected: []any{"true"}},
		{
			name:     "object",
			args:     []string{`{"1Addr":1.5}`},
			expected: []any{map[string]any{"1Addr": 1.5}},
		},
		{
			name:     "mixed",
			args:     []string{"", `{"1Addr":1.5,"2Addr":2.0}`},
			expected: []any{"", map[string]any{"1Addr": 1.5, "2Addr": 2.0}},
		},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, parseParams(tc.args))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("COINRPC_URL", "http://127.0.0.1:18332")
	t.Setenv("COINRPC_USER", "rpcuser")
	t.Setenv("COINRPC_PASS", "rpcpass")
	t.Setenv("LOG_LEVEL", "debug")

	conf, err := LoadConfig(log.NewNoopLogger())
	require.NoError(t, err)

	creds := conf.Credentials()
	assert.Equal(t, "http://127.0.0.1:18332", creds.Endpoint)
	assert.Equal(t, "rpcuser", creds.Username)
	assert.Equal(t, "rpcpass", creds.Password)
	assert.Equal(t, log.LevelDebug, conf.Log.Level)
}

func TestLoadConfigMissingUser(t *testing.T) {
	t.Setenv("COINRPC_URL", "http://127.0.0.1:18332")
	t.Setenv("COINRPC_USER", "")

	_, err := LoadConfig(log.NewNoopLogger())
	require.Error(t, err)
}
