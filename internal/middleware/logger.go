package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

type contextKey string

const loggerKey = contextKey("logger")

// Logger is a middleware that injects a request-scoped logger into the context.
// This logger is pre-configured with the request ID from the RequestID middleware.
// It should be placed after the RequestID middleware in the chain.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()
		reqID := c.Response().Header().Get(echo.HeaderXRequestID)
		requestLogger := slog.Default().With("request_id", reqID)

		newCtx := context.WithValue(req.Context(), loggerKey, requestLogger)
		c.SetRequest(req.WithContext(newCtx))

		err := next(c)
		if err != nil {
			// Let the error handler write the response so the logged status is final.
			c.Error(err)
		}

		requestLogger.LogAttrs(newCtx, levelFor(c.Response().Status), "request",
			slog.String("method", req.Method),
			slog.String("uri", req.RequestURI),
			slog.Int("status", c.Response().Status),
			slog.Duration("latency", time.Since(start)),
			slog.String("remote_ip", c.RealIP()),
		)
		return nil
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// FromContext returns the request-scoped logger, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
