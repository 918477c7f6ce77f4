package logger

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultName is the logger name used when Config.Name is empty.
	DefaultName = "vnetemplate"

	// DefaultPattern prints the level tag, the logger name and the message.
	DefaultPattern = "[%l] [%n] %v"

	// DefaultLevel is the threshold used when Config.Level is empty.
	DefaultLevel = "info"

	// SinkConsole writes log lines to stdout.
	SinkConsole = "console"
)

// Config describes how the logging subsystem should be set up.
// It is consumed by Configure and not retained afterwards.
type Config struct {
	// Name is the root logger name rendered by the %n token.
	Name string `yaml:"name"`
	// Sink selects the output destination. Only "console" is supported.
	Sink string `yaml:"sink"`
	// Pattern is the line layout, see patternEncoder for the tokens.
	Pattern string `yaml:"pattern"`
	// Level is the minimum severity that gets written.
	Level string `yaml:"level"`
	// Async buffers writes and flushes them on Shutdown or periodically.
	Async bool `yaml:"async"`
}

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("logger configuration is not set")
	// errUnknownSink is returned for a sink other than SinkConsole.
	errUnknownSink = errors.New("unknown log sink")
	// errUnknownLevel is returned when Level cannot be parsed.
	errUnknownLevel = errors.New("unknown log level")
)

var (
	// mu guards installed.
	//nolint:gochecknoglobals // Lifecycle of the global logger.
	mu sync.Mutex
	// installed is the buffered sink of the configured logger, if any.
	//nolint:gochecknoglobals // Lifecycle of the global logger.
	installed *zapcore.BufferedWriteSyncer
)

// DefaultConfig returns a synchronous console configuration at info level.
func DefaultConfig() Config {
	return Config{
		Name:    DefaultName,
		Sink:    SinkConsole,
		Pattern: DefaultPattern,
		Level:   DefaultLevel,
		Async:   false,
	}
}

// Validate fills empty fields with defaults and checks sink and level.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Name == "" {
		cfg.Name = DefaultName
	}

	if cfg.Sink == "" {
		cfg.Sink = SinkConsole
	}

	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}

	if cfg.Level == "" {
		cfg.Level = DefaultLevel
	}

	if cfg.Sink != SinkConsole {
		return fmt.Errorf("%w: %q", errUnknownSink, cfg.Sink)
	}

	if _, ok := ParseLogLevel(cfg.Level); !ok {
		return fmt.Errorf("%w: %q", errUnknownLevel, cfg.Level)
	}

	return nil
}

// Configure installs a global logger built from cfg on the configured sink.
func Configure(cfg *Config) error {
	return ConfigureWriter(cfg, zapcore.Lock(os.Stdout))
}

// ConfigureWriter installs a global logger built from cfg that writes to ws.
// Any previously configured logger is shut down first.
func ConfigureWriter(cfg *Config, ws zapcore.WriteSyncer) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	// Validate has already accepted the level.
	lvl, _ := ParseLogLevel(cfg.Level)

	mu.Lock()
	defer mu.Unlock()

	flushLocked()

	if cfg.Async {
		//nolint:exhaustruct // Zero values select zap's buffer size and flush interval.
		installed = &zapcore.BufferedWriteSyncer{WS: ws}
		ws = installed
	}

	defaultLevel.SetLevel(lvl)

	core := zapcore.NewCore(newPatternEncoder(cfg.Pattern), ws, defaultLevel)
	SetLogger(zap.New(core).Named(cfg.Name).Sugar())

	return nil
}

// Shutdown flushes the configured logger, stops its buffered sink and restores
// the default stdout logger at info level. Calling it without a prior Configure
// is harmless.
func Shutdown() {
	mu.Lock()
	defer mu.Unlock()

	flushLocked()

	defaultLevel.SetLevel(zapcore.InfoLevel)
	SetLogger(New(defaultLevel))
}

func flushLocked() {
	// Stdout may not support fsync, which is fine to ignore.
	_ = global.Sync()

	if installed != nil {
		_ = installed.Stop()
		installed = nil
	}
}
