package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/ytscribe/internal/utils"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"
	RequestIDHeader     = "X-Request-ID"
)

// CorrelationIDMiddleware echoes or assigns a correlation ID, assigns a
// request ID and logs each request with both attached.
func CorrelationIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = utils.GenerateCorrelationID()
		}
		requestID := utils.GenerateRequestID()

		c.Set("correlation_id", correlationID)
		c.Set("request_id", requestID)
		c.Header(CorrelationIDHeader, correlationID)
		c.Header(RequestIDHeader, requestID)

		ctx := utils.WithRequestID(utils.WithCorrelationID(c.Request.Context(), correlationID), requestID)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		utils.LogInfo(ctx, "Incoming request", utils.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
		})

		c.Next()

		// Playlist and download requests can run for minutes.
		utils.LogInfo(ctx, "Request completed", utils.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
}
