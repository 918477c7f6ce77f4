package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"panic":   zapcore.PanicLevel,
		"fatal":   zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestValidateFillsDefaults checks that an empty config becomes the default one.
func TestValidateFillsDefaults(t *testing.T) {
	t.Parallel()

	cfg := new(Config)
	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultConfig(), *cfg)

	require.ErrorIs(t, Validate(nil), errConfigIsNotSet)
	require.ErrorIs(t, Validate(&Config{Sink: "file"}), errUnknownSink)
	require.ErrorIs(t, Validate(&Config{Level: "loud"}), errUnknownLevel)
}

// TestConfigureWritesPattern configures a logger onto a buffer and checks the rendered lines.
func TestConfigureWritesPattern(t *testing.T) {
	var out bytes.Buffer

	cfg := DefaultConfig()
	cfg.Name = "test"
	require.NoError(t, ConfigureWriter(&cfg, zapcore.AddSync(&out)))

	ctx := context.Background()
	Info(ctx, "first")
	Debug(ctx, "hidden")
	InfoKV(WithName(ctx, "child"), "second", "key", "value")
	Shutdown()

	require.Equal(t,
		"[info] [test] first\n"+
			"[info] [test.child] second {\"key\": \"value\"}\n",
		out.String())

	// Default level is restored.
	require.Equal(t, zapcore.InfoLevel, Level())
}

// TestConfigureAsyncFlushesOnShutdown ensures buffered output only appears after Shutdown.
func TestConfigureAsyncFlushesOnShutdown(t *testing.T) {
	var out bytes.Buffer

	cfg := DefaultConfig()
	cfg.Async = true
	require.NoError(t, ConfigureWriter(&cfg, zapcore.AddSync(&out)))

	Warn(context.Background(), "buffered")
	require.Empty(t, out.String())

	Shutdown()
	require.Equal(t, "[warn] [vnetemplate] buffered\n", out.String())
}

// TestConfigureRejectsInvalidConfig leaves the current logger in place on error.
func TestConfigureRejectsInvalidConfig(t *testing.T) {
	before := Logger()

	err := Configure(&Config{Sink: "syslog"})
	require.ErrorIs(t, err, errUnknownSink)
	require.Same(t, before, Logger())
}

// TestShutdownWithoutConfigure checks that Shutdown is safe on the default logger.
func TestShutdownWithoutConfigure(t *testing.T) {
	require.NotPanics(t, func() {
		Shutdown()
		Shutdown()
	})
	require.NotNil(t, Logger())
}

// TestWithKVFromContext checks context-scoped loggers.
func TestWithKVFromContext(t *testing.T) {
	var out bytes.Buffer

	cfg := DefaultConfig()
	cfg.Level = "debug"
	require.NoError(t, ConfigureWriter(&cfg, zapcore.AddSync(&out)))

	t.Cleanup(Shutdown)

	ctx := WithKV(context.Background(), "request", 7)
	require.NotSame(t, Logger(), FromContext(ctx))

	Debugf(ctx, "n=%d", 3)
	require.NoError(t, FromContext(ctx).Sync())
	require.Equal(t, "[debug] [vnetemplate] n=3 {\"request\": 7}\n", out.String())
}
