// Package middleware holds gin middleware that is not observability-related.
package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/subplan/notification-dispatch/internal/ratelimit"
)

// RateLimit throttles an endpoint per client IP with a fixed window.
// Denied requests get 429 with a Retry-After header, never a 5xx.
func RateLimit(limiter *ratelimit.Limiter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", c.ClientIP(), c.FullPath())
		res := limiter.Consume(key, limit, window)
		if !res.Allowed {
			retryAfter := res.RetryAfterSeconds()
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":               "rate limit exceeded",
				"retry_after_seconds": retryAfter,
			})
			return
		}
		c.Next()
	}
}
