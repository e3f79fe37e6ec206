package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wortwahl/wortwahl-api/internal/config"
	"github.com/wortwahl/wortwahl-api/internal/platform/logger"
)

func TestSetupRespectsLogLevel(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	log := logger.Setup(config.ServerConfig{Port: 8080, LogLevel: "warn"})
	require.NotNil(t, log)

	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, log.Enabled(context.Background(), slog.LevelWarn))
}

func TestSetupInvalidLevelFallsBackToInfo(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	log := logger.Setup(config.ServerConfig{Port: 8080, LogLevel: "shouting"})
	require.NotNil(t, log)

	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestFromContextRoundTrip(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	ctx := logger.WithLogger(context.Background(), log)

	assert.Same(t, log, logger.FromContext(ctx))
	assert.Same(t, log, logger.FromContextOrDefault(ctx, slog.Default()))
}

func TestFromContextFallbacks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fallback := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	assert.NotNil(t, logger.FromContext(ctx))
	assert.Same(t, fallback, logger.FromContextOrDefault(ctx, fallback))
}

func TestWithRequestIDAnnotatesLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := logger.WithLogger(context.Background(), log)
	ctx = logger.WithRequestID(ctx, "req-123")

	logger.FromContext(ctx).Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
}
