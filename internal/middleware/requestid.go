package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/solace-app/solace/backend/internal/logger"
)

// RequestIDHeader is the header used to propagate correlation IDs.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request a correlation ID. An ID supplied by the
// client in X-Request-ID is kept; otherwise a new UUID is generated. The ID
// is stored on the gin context, the request context (for log enrichment),
// and echoed in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
