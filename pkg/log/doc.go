// Package log provides structured logging for the coinrpc libraries
// and tools.
//
// The Logger interface decouples callers from the backing
// implementation. Two implementations ship with the package:
//
//   - ZapLogger, backed by Uber's zap with console, logfmt or JSON
//     output, configured from the environment (LOG_FORMAT, LOG_LEVEL,
//     LOG_OUTPUT);
//   - NoopLogger, which discards everything and is the default inside
//     the RPC client, keeping transport diagnostics silent unless a
//     caller opts in.
//
// Loggers travel through context:
//
//	ctx = log.WithLogger(ctx, logger)
//	...
//	log.FromContext(ctx).Info("daemon reachable", "endpoint", url)
//
// FromContext never returns nil; without a logger in the context it
// yields the noop logger.
package log
