// Package context carries per-request values between the HTTP layer and the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

// ContextKey names values stored on echo.Context.
type ContextKey string

type scopeKey struct{}

// requestScope is what the request id middleware attaches to the request context.
type requestScope struct {
	requestID string
	logger    *slog.Logger
}

// WithRequestScope returns ctx carrying the request id and a logger already tagged with it.
func WithRequestScope(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, scopeKey{}, &requestScope{requestID: requestID, logger: logger})
}

// WithLogAttrs returns ctx whose request logger also carries attrs. Without a request
// scope ctx is returned unchanged.
func WithLogAttrs(ctx context.Context, attrs ...any) context.Context {
	scope, ok := ctx.Value(scopeKey{}).(*requestScope)
	if !ok {
		return ctx
	}

	return WithRequestScope(ctx, scope.requestID, scope.logger.With(attrs...))
}

// RequestIDFromContext returns the request id, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	if scope, ok := ctx.Value(scopeKey{}).(*requestScope); ok {
		return scope.requestID
	}

	return ""
}

// LoggerFromContext returns the request-scoped logger, or nil outside a request.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if scope, ok := ctx.Value(scopeKey{}).(*requestScope); ok {
		return scope.logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := LoggerFromContext(ctx); logger != nil {
		return logger
	}

	return fallback
}

// GetRequestID returns the id of the request being served, as echoed in the response header.
func GetRequestID(c echo.Context) string {
	if id := RequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return c.Response().Header().Get(HeaderXRequestID)
}
