package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logging records one line per request: method, path, status, latency and
// the request id set by RequestID.
func (mw Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		mw.l.Infof(c.Request.Context(), "%s %s status=%d latency=%s request_id=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.GetString(HeaderRequestID),
		)
	}
}
