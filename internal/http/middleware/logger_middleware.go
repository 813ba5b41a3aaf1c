package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saradorri/safecasino/internal/infrastructure/logger"
)

// skipped paths generate too much noise to log per request
var unloggedPaths = map[string]bool{
	"/health": true,
}

// LoggerMiddleware logs every processed request in structured form
func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if unloggedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		latency := time.Since(start)

		requestID := ""
		if id, exists := c.Get("request_id"); exists {
			requestID = id.(string)
		}

		ctx := c.Request.Context()
		if requestID != "" {
			ctx = context.WithValue(ctx, "request_id", requestID)
		}

		log.WithRequest(
			ctx,
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			latency.String(),
			c.Writer.Size(),
		).Info("HTTP Request Processed")
	}
}
