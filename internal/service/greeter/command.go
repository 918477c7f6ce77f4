package greeter

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap/zapcore"

	"github.com/vertexnova/vnetemplate/internal/config"
	"github.com/vertexnova/vnetemplate/internal/logger"
	"github.com/vertexnova/vnetemplate/template"
)

// Options controls where settings come from and where log lines go.
type Options struct {
	// ConfigPath to the YAML settings file. Built-in defaults are used when empty.
	ConfigPath string
	// LogLevel overrides the level from the settings file when set.
	LogLevel string
	// Output replaces the configured sink, mainly for tests.
	Output io.Writer
}

// errOptionsAreNotSet is returned when Run receives nil options.
var errOptionsAreNotSet = errors.New("greeter options are not set")

// Run configures the logger, logs the greeting and the version, then shuts logging down.
func Run(ctx context.Context, opts *Options) error {
	if opts == nil {
		return errOptionsAreNotSet
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if opts.Output != nil {
		err = logger.ConfigureWriter(&cfg.Logging, zapcore.AddSync(opts.Output))
	} else {
		err = logger.Configure(&cfg.Logging)
	}

	if err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}

	// Flush buffered output on every exit path.
	defer logger.Shutdown()

	ctx = logger.WithName(ctx, "greeter")

	logger.DebugKV(ctx, "Logger configured",
		"sink", cfg.Logging.Sink,
		"level", cfg.Logging.Level,
		"async", cfg.Logging.Async,
	)

	logger.Info(ctx, template.Hello())
	logger.Infof(ctx, "Version: %s", template.GetVersion())

	return nil
}

// loadConfig reads settings from opts.ConfigPath or falls back to defaults,
// then applies the level override.
func loadConfig(opts *Options) (*config.Config, error) {
	cfg := config.Default()

	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load configuration: %w", err)
		}

		cfg = loaded
	}

	if opts.LogLevel != "" {
		if _, ok := logger.ParseLogLevel(opts.LogLevel); !ok {
			return nil, fmt.Errorf("invalid log level %q", opts.LogLevel)
		}

		cfg.Logging.Level = opts.LogLevel
	}

	return cfg, nil
}
