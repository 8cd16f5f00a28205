// Package context carries request-scoped values (request id and logger)
// between the HTTP layer and the services it calls.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type key int

const (
	requestIDKey key = iota
	loggerKey
)

// HeaderXRequestID is echoed back on every response.
const HeaderXRequestID = echo.HeaderXRequestID

// echoRequestIDKey is the echo.Context slot the request id lives in.
const echoRequestIDKey = "request_id"

// GetRequestID returns the id assigned by the request id middleware, falling
// back to the response header for handlers mounted without it.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return c.Response().Header().Get(HeaderXRequestID)
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLoggerOrDefault returns the request logger stored by WithLogger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
