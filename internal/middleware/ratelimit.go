package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salone/internal/pkg/logger"
	"salone/internal/pkg/response"
	"salone/internal/ratelimit"
)

// RateLimit keys the counter by route name and client IP. A failing counter
// store lets the request through; losing abuse protection beats serving 500s.
func RateLimit(l ratelimit.Limiter, name string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := name + ":" + c.ClientIP()

		ok, err := l.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Log.Warn("rate limit check failed", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
