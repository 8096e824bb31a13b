package log

var _ Logger = NoopLogger{}

// NoopLogger discards every message. It is the default logger of the
// RPC client and a convenient stand-in for tests.
type NoopLogger struct{}

// NewNoopLogger returns a logger that discards everything.
func NewNoopLogger() Logger {
	return NoopLogger{}
}

func (NoopLogger) Debug(string, ...any) {}

func (NoopLogger) Info(string, ...any) {}

func (NoopLogger) Warn(string, ...any) {}

func (NoopLogger) Error(string, ...any) {}

func (NoopLogger) Fatal(string, ...any) {}

func (l NoopLogger) With(...any) Logger { return l }

func (l NoopLogger) WithName(string) Logger { return l }

func (NoopLogger) Name() string { return "" }
