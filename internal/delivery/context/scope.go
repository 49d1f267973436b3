// Package context carries request-scoped values (request ID, logger and caller identity)
// from the delivery layer down to the usecases.
package context

import (
	"context"
	"log/slog"

	"giftshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

type (
	requestIDKey struct{}
	loggerKey    struct{}
	callerKey    struct{}
)

// Caller is the authenticated identity behind a request.
type Caller struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestIDFromContext returns the request ID, or "" when none was set.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

// RequestID returns the ID assigned to the request by the request ID middleware.
func RequestID(c echo.Context) string {
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return c.Response().Header().Get(HeaderXRequestID)
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithCaller stores the caller and tags the request-scoped logger with its user ID.
func WithCaller(ctx context.Context, caller Caller) context.Context {
	ctx = context.WithValue(ctx, callerKey{}, caller)
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", caller.UserID.String())))
	}

	return ctx
}

// CallerFromContext returns the authenticated caller, if any.
func CallerFromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(Caller)

	return caller, ok && caller.UserID != uuid.Nil
}
