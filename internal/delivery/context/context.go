// Package context carries request-scoped values (request id, logger, caller)
// from the HTTP layer down to the services.
package context

import (
	"context"
	"log/slog"

	"courier/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyPrincipal ContextKey = "principal"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

func value[T any](ctx context.Context, key ContextKey) (T, bool) {
	v, ok := ctx.Value(key).(T)

	return v, ok
}

func echoValue[T any](c echo.Context, key ContextKey) (T, bool) {
	v, ok := c.Get(string(key)).(T)

	return v, ok
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the id assigned by the request-id middleware, or the
// response header when the middleware did not run on the echo.Context.
func GetRequestID(c echo.Context) string {
	if id, ok := echoValue[string](c, KeyRequestID); ok && id != "" {
		return id
	}

	return c.Response().Header().Get(HeaderXRequestID)
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetRequestIDFromContext returns the request ID or an empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := value[string](ctx, KeyRequestID)

	return id
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := value[*slog.Logger](ctx, KeyLogger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetPrincipal stores the authenticated caller on echo.Context and on the
// request context. The request logger gains the caller's user id.
func SetPrincipal(c echo.Context, principal entity.Principal) {
	c.Set(string(KeyPrincipal), principal)

	ctx := context.WithValue(c.Request().Context(), KeyPrincipal, principal)
	if logger, ok := value[*slog.Logger](ctx, KeyLogger); ok && logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", principal.UserID.String())))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetPrincipal returns the authenticated caller from echo.Context.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	return echoValue[entity.Principal](c, KeyPrincipal)
}

// GetPrincipalFromContext returns the authenticated caller from context.Context.
func GetPrincipalFromContext(ctx context.Context) (entity.Principal, bool) {
	return value[entity.Principal](ctx, KeyPrincipal)
}
