package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ctxKey string

const loggerCtxKey ctxKey = "logger"

// RequestIDHeader is the response header carrying the request id.
const RequestIDHeader = "X-Request-ID"

// StructuredLoggingMiddleware attaches a request-scoped slog logger to the
// request context and emits one structured line per request on completion.
func StructuredLoggingMiddleware(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, requestID)

		logger := base.With(
			slog.String("requestId", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)
		ctx := context.WithValue(c.Request.Context(), loggerCtxKey, logger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		logger.InfoContext(ctx, "request completed",
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("clientIp", c.ClientIP()),
		)
	}
}

// GetLoggerFromCtx returns the request-scoped logger, falling back to the
// default logger when none is attached.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
