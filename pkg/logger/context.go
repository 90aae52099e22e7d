package logger

import (
	"context"
	"log/slog"
)

type contextKey struct{}

var requestLoggerKey contextKey

// With attaches extra fields to the request-scoped logger. Middleware uses it
// to stamp the trace id so every log line of a request carries it.
func With(ctx context.Context, fields ...any) context.Context {
	l := From(ctx).With(fields...)
	return context.WithValue(ctx, requestLoggerKey, l)
}

// From returns the request-scoped logger, falling back to the process logger
// when the context has none.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(requestLoggerKey).(*slog.Logger); ok {
		return l
	}
	return LoggerWrapper()
}
