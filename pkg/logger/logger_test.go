package logger_test

import (
	"context"
	"testing"

	"yelpcamp/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		debug       bool
	}{
		{name: "development defaults to debug", environment: logger.DevelopmentEnvironment, debug: true},
		{name: "production defaults to info", environment: logger.ProductionEnvironment, debug: false},
		{name: "level override", environment: logger.DevelopmentEnvironment, level: "warn", debug: false},
		{name: "invalid level is ignored", environment: logger.DevelopmentEnvironment, level: "loud", debug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(tt.environment, tt.level)
			})

			ctx := context.Background()
			require.NotNil(t, logger.Get(ctx))
			require.Equal(t, tt.debug, logger.IsDebug(ctx))
		})
	}
}

func TestGet_PrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "should fall back to the default logger")

	custom := zap.NewNop()
	require.Same(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFields_AttachesFieldsToEveryEntry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("requestID", "req-1"))
	logger.Info(ctx, "first")
	logger.Warn(logger.WithFields(ctx, zap.Int("followers", 3)), "second")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "req-1", entries[0].ContextMap()["requestID"])
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.Equal(t, "req-1", entries[1].ContextMap()["requestID"])
	require.EqualValues(t, 3, entries[1].ContextMap()["followers"])
}

func TestSlog_WritesThroughZapCore(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Slog(ctx).Info("from slog", "queue", "default")

	entries := logs.FilterMessage("from slog").All()
	require.Len(t, entries, 1)
	require.Equal(t, "default", entries[0].ContextMap()["queue"])
}

func TestLoggingFunctions(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug message", zap.String("key", "value"))
		logger.Info(ctx, "info message", zap.String("key", "value"))
		logger.Warn(ctx, "warn message", zap.String("key", "value"))
		logger.Error(ctx, "error message", zap.String("key", "value"))
		logger.Sync()
	})
}
