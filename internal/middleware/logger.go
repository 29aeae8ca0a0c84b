package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"misportal/internal/domain"
)

// RequestID injects an X-Request-ID header into the request and response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger logs each request with method, path, status, latency and, once
// the auth middleware has run, the acting username. Health probes are
// skipped to keep the log readable under load-balancer polling.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/healthz" || path == "/readyz" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		actor := "-"
		if v, ok := c.Get(ContextKeyUser); ok {
			if u, ok := v.(*domain.User); ok {
				actor = u.Username
			}
		}

		requestID, _ := c.Get("request_id")
		log.Printf("[%s] %s %s %d %s actor=%s",
			requestID,
			c.Request.Method,
			path,
			c.Writer.Status(),
			latency,
			actor,
		)
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
