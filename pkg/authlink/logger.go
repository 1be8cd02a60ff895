package authlink

// Logger receives the client's structured request logs. internal/logger's
// ZapLogger satisfies it, as does any logger with the same *Obj methods.
type Logger interface {
	DebugObj(msg, key string, obj any)
	WarnObj(msg, key string, obj any)
}

type noopLogger struct{}

func (noopLogger) DebugObj(string, string, any) {}
func (noopLogger) WarnObj(string, string, any)  {}

func ensureLogger(log Logger) Logger {
	if log == nil {
		return noopLogger{}
	}
	return log
}
