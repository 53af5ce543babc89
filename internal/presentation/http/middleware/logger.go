package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggerMiddleware creates a request logging middleware
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Generate request ID if not present
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		log.Printf("[%s] %s | %d | %v | %s | %s",
			requestID[:8],
			c.Request.Method,
			c.Writer.Status(),
			latency,
			c.ClientIP(),
			path,
		)

		if len(c.Errors) > 0 {
			for _, e := range c.Errors {
				log.Printf("[%s] Error: %v", requestID[:8], e.Err)
			}
		}
	}
}
