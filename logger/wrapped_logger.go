package logger

// WrappedLogger is embedded by components that log only if they were given a Logger. All methods are no-ops for a
// nil WrappedLogger or one without a Logger.
type WrappedLogger struct {
	logger *Logger
}

// NewWrappedLogger creates a new WrappedLogger. The logger may be nil.
func NewWrappedLogger(logger *Logger) *WrappedLogger {
	return &WrappedLogger{logger: logger}
}

// Logger returns the wrapped Logger or nil.
func (l *WrappedLogger) Logger() *Logger {
	if !l.enabled() {
		return nil
	}

	return l.logger
}

// LoggerNamed returns a named child of the wrapped Logger or nil.
func (l *WrappedLogger) LoggerNamed(name string) *Logger {
	if !l.enabled() {
		return nil
	}

	return l.logger.Named(name)
}

// LogDebugf logs a templated message at debug level.
func (l *WrappedLogger) LogDebugf(template string, args ...interface{}) {
	if l.enabled() {
		l.logger.Debugf(template, args...)
	}
}

// LogInfof logs a templated message at info level.
func (l *WrappedLogger) LogInfof(template string, args ...interface{}) {
	if l.enabled() {
		l.logger.Infof(template, args...)
	}
}

// LogErrorf logs a templated message at error level.
func (l *WrappedLogger) LogErrorf(template string, args ...interface{}) {
	if l.enabled() {
		l.logger.Errorf(template, args...)
	}
}

func (l *WrappedLogger) enabled() bool {
	return l != nil && l.logger != nil
}
