package log

// Logger is the logging interface used across the coinrpc packages.
// Messages carry structured context as alternating key/value pairs:
//
//	logger.Info("call succeeded", "method", "getbalance", "took", took)
type Logger interface {
	// Debug logs low-level diagnostics useful during development.
	Debug(msg string, keysAndValues ...any)
	// Info logs routine progress and state changes.
	Info(msg string, keysAndValues ...any)
	// Warn logs unexpected situations the program can survive.
	Warn(msg string, keysAndValues ...any)
	// Error logs failures that need attention.
	Error(msg string, keysAndValues ...any)
	// Fatal logs an unrecoverable failure and terminates the program.
	Fatal(msg string, keysAndValues ...any)
	// With returns a logger that attaches the key/value pairs to every
	// future message.
	With(keysAndValues ...any) Logger
	// WithName returns a logger named after a component; names nest
	// with dots ("coinrpc.transport").
	WithName(name string) Logger
	// Name returns the logger's component name.
	Name() string
}

// Level filters log output by severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)
