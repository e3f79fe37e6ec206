package logger

import (
	"context"
	"log/slog"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey int

const loggerKey contextKey = iota

// WithLogger returns a new context carrying the given logger. The trace
// middleware stores the request-scoped logger this way; handlers and
// services retrieve it with FromContext or FromContextOrDefault.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from the context, or the default
// logger if the context carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger from the context, falling
// back to the provided logger. Components with their own component-tagged
// logger use this so a request-scoped logger wins when present.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	if def != nil {
		return def
	}
	return slog.Default()
}

// WithRequestID re-stores the context logger with the request ID attached
// as a structured attribute. The trace middleware calls this with chi's
// request ID so both it and the trace ID appear on every request log line.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	logger := FromContext(ctx).With(slog.String("request_id", requestID))
	return WithLogger(ctx, logger)
}
