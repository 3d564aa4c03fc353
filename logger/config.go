package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/dll/lo"
)

// Keys of the logger settings in a configuration.Configuration.
const (
	ConfigurationKeyLevel             = "logger.level"
	ConfigurationKeyDisableCaller     = "logger.disableCaller"
	ConfigurationKeyDisableStacktrace = "logger.disableStacktrace"
	ConfigurationKeyEncoding          = "logger.encoding"
	ConfigurationKeyOutputPaths       = "logger.outputPaths"
)

// Config describes a root logger. Empty fields take the value of DefaultConfig.
type Config struct {
	// Level is one of debug, info, warn, error, dpanic, panic or fatal.
	Level string `json:"level"`
	// DisableCaller drops the file:line annotation.
	DisableCaller bool `json:"disableCaller"`
	// DisableStacktrace drops the stacktrace that is attached to error logs.
	DisableStacktrace bool `json:"disableStacktrace"`
	// Encoding is either "console" or "json".
	Encoding string `json:"encoding"`
	// OutputPaths are file paths, URLs, "stdout" or "stderr".
	OutputPaths []string `json:"outputPaths"`
}

var defaultCfg = Config{
	Level:       "info",
	Encoding:    "console",
	OutputPaths: []string{"stdout"},
}

// DefaultConfig returns the settings used for everything a configuration leaves out.
func DefaultConfig() Config {
	cfg := defaultCfg
	cfg.OutputPaths = lo.CopySlice(defaultCfg.OutputPaths)

	return cfg
}

var defaultEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// zapConfig translates the Config into a zap.Config that reads its level from atomicLevel.
func (c Config) zapConfig(atomicLevel zap.AtomicLevel) zap.Config {
	return zap.Config{
		Level:             atomicLevel,
		DisableCaller:     c.DisableCaller,
		DisableStacktrace: c.DisableStacktrace,
		Encoding:          lo.Cond(c.Encoding == "", defaultCfg.Encoding, c.Encoding),
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       lo.Cond(len(c.OutputPaths) == 0, lo.CopySlice(defaultCfg.OutputPaths), c.OutputPaths),
		ErrorOutputPaths:  []string{"stderr"},
	}
}
