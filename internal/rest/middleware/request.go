package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/types"
)

const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware keeps the caller's X-Request-ID or makes one up,
// puts it on the request context and echoes it back
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(HeaderRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	c.Request = c.Request.WithContext(types.SetRequestID(c.Request.Context(), requestID))
	c.Header(HeaderRequestID, requestID)

	c.Next()
}

// LoggingMiddleware writes one line per request once it is served
func LoggingMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", types.GetRequestID(c.Request.Context()),
		)
	}
}
