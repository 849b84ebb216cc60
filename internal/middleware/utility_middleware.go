package middleware

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"luxerent/internal/utils"
	"luxerent/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware configures CORS headers. An allowed-origins list of
// "*" echoes any origin; otherwise only listed origins are reflected.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowAny := utils.ContainsString(allowedOrigins, "*")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case allowAny:
			c.Header("Access-Control-Allow-Origin", "*")
		case utils.ContainsString(allowedOrigins, origin):
			c.Header("Access-Control-Allow-Origin", origin)
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "Content-Length")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// RequestIDMiddleware adds a request ID to each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("%d-%d", time.Now().UnixNano(), rand.Intn(10000))
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// RateLimiter is the counter backend used by RateLimitMiddleware.
type RateLimiter interface {
	CheckRateLimit(ctx context.Context, key string, limit int64, window time.Duration) (bool, error)
}

// RateLimitMiddleware caps requests per client IP over a fixed window.
// Fails open when the counter backend is unreachable.
func RateLimitMiddleware(limiter RateLimiter, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.CheckRateLimit(c.Request.Context(), c.ClientIP(), limit, window)
		if err == nil && !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuditMiddleware records every mutating request to the audit trail
// after it completes, with the acting client when one is authenticated.
func AuditMiddleware(audit *logger.AuditLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if utils.ContainsString([]string{"GET", "HEAD", "OPTIONS"}, c.Request.Method) {
			return
		}

		var clientID *int64
		if value, exists := c.Get("client_id"); exists {
			if id, ok := value.(int64); ok {
				clientID = &id
			}
		}

		audit.LogAction(c.Request.Method, c.FullPath(), clientID, map[string]interface{}{
			"status":     c.Writer.Status(),
			"ip_address": c.ClientIP(),
			"user_agent": utils.Truncate(c.Request.UserAgent(), 256),
			"request_id": c.GetString("request_id"),
		})
	}
}
