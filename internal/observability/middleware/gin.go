package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/subplan/notification-dispatch/internal/observability/logging"
	"github.com/subplan/notification-dispatch/internal/observability/metrics"
)

type GinConfig struct {
	// SkipPaths are logged/measured by neither middleware (health probes).
	SkipPaths   []string
	HTTPMetrics *metrics.HTTPMetrics
}

// Gin attaches a request ID to the context, logs the request outcome and
// records HTTP metrics.
func Gin(cfg GinConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if slices.Contains(cfg.SkipPaths, c.Request.URL.Path) {
			c.Next()
			return
		}

		requestID := c.GetHeader("x-request-id")
		ctx := c.Request.Context()
		if requestID != "" {
			ctx = logging.WithRequestID(ctx, requestID)
		} else {
			ctx, requestID = logging.EnsureRequestID(ctx)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Header("x-request-id", requestID)

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		status := c.Writer.Status()
		if cfg.HTTPMetrics != nil {
			cfg.HTTPMetrics.Record(ctx, c.Request.Method, c.FullPath(), status, duration)
		}

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", duration),
			slog.String("request_id", requestID),
		}
		if status >= http.StatusInternalServerError {
			slog.ErrorContext(ctx, "request failed", attrs...)
		} else {
			slog.InfoContext(ctx, "request handled", attrs...)
		}
	}
}

// PanicRecoveryGin converts handler panics into 500 responses.
func PanicRecoveryGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(c.Request.Context(), "panic recovered",
					slog.Any("panic", r),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
			}
		}()
		c.Next()
	}
}
