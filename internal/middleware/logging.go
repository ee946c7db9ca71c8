package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todovault-api/internal/logging"
)

// Logging attaches a request-scoped logger to the request context and logs
// each completed request. Errors recorded with c.Error are logged as well.
func Logging(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		child := logger.With(slog.String("request_id", GetRequestID(c)))
		c.Request = c.Request.WithContext(logging.WithLogger(c.Request.Context(), child))

		c.Next()

		ctx := c.Request.Context()
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			child.ErrorContext(ctx, "request failed", append(attrs, slog.String("error", c.Errors.String()))...)
			return
		}
		child.InfoContext(ctx, "request completed", attrs...)
	}
}
