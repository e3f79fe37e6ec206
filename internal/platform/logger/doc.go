// Package logger sets up structured JSON logging on log/slog with the
// configured level, and carries request-scoped loggers through contexts so
// trace and request IDs follow a request across layers.
package logger
