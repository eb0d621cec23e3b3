package middleware

import (
	"github.com/gin-gonic/gin"

	"kube-query-agent/pkg/response"
)

// RateLimit rejects requests with 429 once the configured per-minute budget
// is spent. A nil limiter passes everything through.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter != nil && !mw.limiter.Allow() {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
