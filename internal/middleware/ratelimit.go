package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"

	"github.com/Susmita-Codes/Pravartak-AI/internal/config"
)

// limiterTTL is how long an idle caller's bucket is kept.
const limiterTTL = time.Hour

// RateLimit throttles each caller with a token bucket. Authenticated callers are
// keyed by user ID, others by client IP, so it must run after AuthMiddleware
// on protected groups.
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	return limit.NewRateLimiter(
		func(c *gin.Context) string {
			if userID := c.GetString(UserIDKey); userID != "" {
				return "user:" + userID
			}
			return "ip:" + c.ClientIP()
		},
		func(c *gin.Context) (*rate.Limiter, time.Duration) {
			return rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst), limiterTTL
		},
		func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please slow down."})
		},
	)
}
