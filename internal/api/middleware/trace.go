// Package middleware provides HTTP middleware shared by all routes.
package middleware

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/wortwahl/wortwahl-api/internal/api/shared"
	"github.com/wortwahl/wortwahl-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and stores a
// request-scoped logger there, so every handler and service log line
// within the request carries the same trace_id. When chi's RequestID
// middleware runs earlier in the chain, its ID is attached as request_id
// too, correlating our log stream with chi's.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		ctx = logger.WithLogger(ctx, slog.Default().With(slog.String("trace_id", traceID)))
		if reqID := chimiddleware.GetReqID(ctx); reqID != "" {
			ctx = logger.WithRequestID(ctx, reqID)
		}

		log := logger.FromContext(ctx)
		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
