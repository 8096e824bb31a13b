// Command coinrpc issues a single JSON-RPC call against a
// cryptocurrency daemon and prints the raw JSON result.
//
// Usage:
//
//	coinrpc <method> [param ...]
//
// Parameters that parse as JSON are sent as the parsed value, so
// numbers, booleans, arrays and objects can be passed directly;
// anything else is sent as a string:
//
//	coinrpc getblockhash 12345
//	coinrpc sendmany "" '{"1Addr":1.5,"2Addr":2.0}'
//
// The daemon endpoint and credentials come from the environment (or a
// .env file): COINRPC_URL, COINRPC_USER, COINRPC_PASS. Logging is
// controlled by LOG_FORMAT, LOG_LEVEL and LOG_OUTPUT.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashlattice/coinrpc/pkg/log"
	"github.com/hashlattice/coinrpc/pkg/rpc"
)

func main() {
	bootLogger := log.NewZapLogger(log.Config{})

	conf, err := LoadConfig(bootLogger)
	if err != nil {
		bootLogger.Fatal("invalid configuration", "error", err)
	}
	logger := log.NewZapLogger(conf.Log)

	if len(os.Args) < 2 {
		logger.Fatal("usage: coinrpc <method> [param ...]")
	}
	method := os.Args[1]
	params := parseParams(os.Args[2:])

	client, err := rpc.NewClient(conf.Credentials(), rpc.ClientConfig{Logger: logger})
	if err != nil {
		logger.Fatal("invalid daemon endpoint", "error", err)
	}

	result, err := client.CallRaw(context.Background(), method, params...)
	if err != nil {
		logger.Fatal("call failed", "method", method, "error", err)
	}

	fmt.Println(string(result))
}

// parseParams converts command line arguments into RPC parameters.
// Arguments that parse as JSON keep their parsed type; the rest are
// passed through as strings.
func parseParams(args []string) []any {
	params := make([]any, 0, len(args))
	for _, arg := range args {
		var value any
		if err := json.Unmarshal([]byte(arg), &value); err != nil {
			value = arg
		}
		params = append(params, value)
	}
	return params
}
