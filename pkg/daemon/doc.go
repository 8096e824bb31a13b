// Package daemon provides typed wrappers over the daemon's JSON-RPC
// methods.
//
// Each wrapper pairs one remote procedure with its Go parameter and
// result types and delegates the wire work to pkg/rpc. The set here is
// representative rather than exhaustive: the daemon exposes many more
// procedures, all of which follow the same mechanical shape and can be
// called directly through rpc.Client.Call or rpc.Client.CallRaw.
//
//	client, err := daemon.New(rpc.Credentials{
//	    Endpoint: "http://127.0.0.1:8332",
//	    Username: "user",
//	    Password: "pass",
//	})
//	...
//	balance, err := client.GetBalance(ctx)
package daemon
