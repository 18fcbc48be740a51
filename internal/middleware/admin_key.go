package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
)

// AdminKeyMiddleware guards operator endpoints with the X-Admin-Key header.
// With no key configured every request is rejected.
func AdminKeyMiddleware(adminKey string) gin.HandlerFunc {
	if adminKey == "" {
		logger.L().Warn("ADMIN_API_KEY is not set; admin endpoints are disabled")
	}
	return func(c *gin.Context) {
		clientKey := c.GetHeader("X-Admin-Key")
		if adminKey == "" || subtle.ConstantTimeCompare([]byte(clientKey), []byte(adminKey)) != 1 {
			logger.L().Warn("admin key rejected", zap.String("client_ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
