package logger

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iotaledger/dll/configuration"
)

func init() {
	defaultEncoderConfig.TimeKey = "" // no timestamps in tests
}

func TestNewRootLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expectRx string
	}{
		{
			name: "console",
			cfg: Config{
				Level:    "info",
				Encoding: "console",
			},
			expectRx: `INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "json",
			cfg: Config{
				Level:    "info",
				Encoding: "json",
			},
			expectRx: `{"level":"INFO","caller":"logger/logger_test.go:\d+","msg":"info"}\n` +
				`{"level":"WARN","caller":"logger/logger_test.go:\d+","msg":"warn"}`,
		},
		{
			name: "debug",
			cfg: Config{
				Level: "debug",
			},
			expectRx: `DEBUG\tlogger/logger_test.go:\d+\tdebug\n` +
				`INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "noCaller",
			cfg: Config{
				DisableCaller: true,
			},
			expectRx: "INFO\tinfo\n" +
				"WARN\twarn\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			temp := tempFile(t)
			tt.cfg.OutputPaths = []string{temp.Name()}

			logger, err := NewRootLogger(tt.cfg)
			require.NoError(t, err, "Unexpected error constructing logger.")

			logger.Debug("debug")
			logger.Info("info")
			logger.Warn("warn")

			assert.Regexp(t, tt.expectRx, getLogs(t, temp), "Unexpected log output.")
		})
	}
}

func TestNewRootLoggerInvalidLevel(t *testing.T) {
	_, err := NewRootLogger(Config{Level: "loud"})
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	temp := tempFile(t)

	// override the default config to also write to temp file
	cfg := DefaultConfig()
	cfg.OutputPaths = append(cfg.OutputPaths, temp.Name())

	// init the global logger for that temp file and de-init afterwards
	defer initGlobal(t, cfg)()

	t.Run("info", func(t *testing.T) {
		logger := NewLogger("test")
		logger.Info("info")

		logs := getLogs(t, temp)
		assert.Regexp(t, `INFO\ttest\t.*info\n`, logs, "Unexpected log output.")
	})

	t.Run("setLevel", func(t *testing.T) {
		logger := NewLogger("test")
		SetLevel(LevelDebug)
		logger.Debug("debug1")
		SetLevel(LevelInfo)
		logger.Debug("debug2")

		logs := getLogs(t, temp)
		assert.Regexp(t, `debug1\n`, logs, "Unexpected log output.")
		assert.NotRegexp(t, `debug2\n`, logs, "Unexpected log output.")
	})
}

func TestNewLoggerWithoutInit(t *testing.T) {
	assert.Panics(t, func() { NewLogger("test") })
}

func TestInitGlobalAfterError(t *testing.T) {
	// create invalid config
	cfg := DefaultConfig()
	cfg.Level = "invalid"

	require.Error(t, InitGlobalLogger(loadConfig(t, cfg)))

	initGlobal(t, DefaultConfig())()
}

func TestInitGlobalTwice(t *testing.T) {
	config := loadConfig(t, DefaultConfig())

	require.NoError(t, InitGlobalLogger(config))
	defer deinitGlobal()

	require.ErrorIs(t, InitGlobalLogger(config), ErrGlobalLoggerAlreadyInitialized)
}

func TestInitGlobalDefaults(t *testing.T) {
	temp := tempFile(t)

	// only the output is configured, everything else falls back to the defaults
	config := configuration.New()
	require.NoError(t, config.LoadDefaults(map[string]interface{}{
		ConfigurationKeyOutputPaths: []string{temp.Name()},
		ConfigurationKeyEncoding:    "json",
	}))

	require.NoError(t, InitGlobalLogger(config))
	defer deinitGlobal()

	logger := NewLogger("defaults")
	logger.Debug("hidden")
	logger.Info("shown")

	logs := getLogs(t, temp)
	assert.Regexp(t, `"logger":"defaults".*"msg":"shown"`, logs)
	assert.NotRegexp(t, `hidden`, logs)
}

func TestWrappedLogger(t *testing.T) {
	var missing *WrappedLogger
	require.Nil(t, missing.Logger())
	require.NotPanics(t, func() { missing.LogInfof("%d", 1) })

	unset := NewWrappedLogger(nil)
	require.Nil(t, unset.Logger())
	require.Nil(t, unset.LoggerNamed("child"))
	require.NotPanics(t, func() {
		unset.LogDebugf("%d", 1)
		unset.LogInfof("%d", 1)
		unset.LogErrorf("%d", 1)
	})

	temp := tempFile(t)
	root, err := NewRootLogger(Config{Level: "debug", DisableCaller: true, DisableStacktrace: true, OutputPaths: []string{temp.Name()}})
	require.NoError(t, err)

	wrapped := NewWrappedLogger(root)
	require.Same(t, root, wrapped.Logger())

	wrapped.LogDebugf("debug %d", 1)
	wrapped.LogInfof("info %d", 2)
	wrapped.LogErrorf("error %d", 4)
	wrapped.LoggerNamed("child").Info("named")

	assert.Regexp(t, "DEBUG\tdebug 1\n"+
		"INFO\tinfo 2\n"+
		"ERROR\terror 4\n"+
		"INFO\tchild\tnamed\n", getLogs(t, temp))
}

func loadConfig(t require.TestingT, cfg Config) *configuration.Configuration {
	config := configuration.New()
	require.NoError(t, config.LoadDefaults(map[string]interface{}{
		ConfigurationKeyLevel:             cfg.Level,
		ConfigurationKeyDisableCaller:     cfg.DisableCaller,
		ConfigurationKeyDisableStacktrace: cfg.DisableStacktrace,
		ConfigurationKeyEncoding:          cfg.Encoding,
		ConfigurationKeyOutputPaths:       cfg.OutputPaths,
	}))

	return config
}

func initGlobal(t require.TestingT, cfg Config) func() {
	err := InitGlobalLogger(loadConfig(t, cfg))
	require.NoError(t, err, "Failed to init global logger.")

	return deinitGlobal
}

// deinitGlobal de-initializes the global logger.
func deinitGlobal() {
	mu.Lock()
	defer mu.Unlock()

	logger = nil
	level = zap.NewAtomicLevel()
	initialized.Store(false)
}

func tempFile(t *testing.T) *os.File {
	temp, err := os.CreateTemp(t.TempDir(), "dll-logger-test")
	require.NoError(t, err, "Failed to create temp file.")
	t.Cleanup(func() { _ = temp.Close() })

	return temp
}

func getLogs(t require.TestingT, file *os.File) string {
	byteContents, err := io.ReadAll(file)
	require.NoError(t, err, "Couldn't read log contents from file.")

	return string(byteContents)
}
