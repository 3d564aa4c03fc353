package logger

import (
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/dll/configuration"
	"github.com/iotaledger/dll/ierrors"
)

// Logger is a simple wrapper around a zap.SugaredLogger.
type Logger = zap.SugaredLogger

// Level is the logging level of a Logger.
type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
	LevelPanic = zapcore.PanicLevel
	LevelFatal = zapcore.FatalLevel
)

// ErrGlobalLoggerAlreadyInitialized is returned when InitGlobalLogger is called more than once.
var ErrGlobalLoggerAlreadyInitialized = ierrors.New("global logger already initialized")

var (
	level       = zap.NewAtomicLevel()
	logger      *Logger
	initialized atomic.Bool
	mu          sync.Mutex
)

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*Logger, error) {
	return newRootLogger(cfg, zap.NewAtomicLevel())
}

// InitGlobalLogger initializes the global logger from the "logger" section of the provided configuration. Settings
// that are missing fall back to the defaults.
func InitGlobalLogger(config *configuration.Configuration) error {
	mu.Lock()
	defer mu.Unlock()

	if initialized.Load() {
		return ErrGlobalLoggerAlreadyInitialized
	}

	cfg := DefaultConfig()
	if err := config.Unmarshal("logger", &cfg); err != nil {
		return ierrors.Wrap(err, "unable to read the logger configuration")
	}

	root, err := newRootLogger(cfg, level)
	if err != nil {
		return err
	}

	logger = root
	initialized.Store(true)

	return nil
}

// NewLogger returns a new named child of the global root logger.
// It panics if the global logger was not initialized.
func NewLogger(name string) *Logger {
	mu.Lock()
	defer mu.Unlock()

	if !initialized.Load() {
		panic("global logger not initialized")
	}

	return logger.Named(name)
}

// SetLevel alters the logging level of the global logger and all its children.
func SetLevel(l Level) {
	level.SetLevel(l)
}

func newRootLogger(cfg Config, atomicLevel zap.AtomicLevel) (*Logger, error) {
	if err := atomicLevel.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, ierrors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	root, err := cfg.zapConfig(atomicLevel).Build()
	if err != nil {
		return nil, ierrors.Wrap(err, "unable to build the root logger")
	}

	return root.Sugar(), nil
}
