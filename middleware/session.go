package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "requestId"

// RequestIDMiddleware hər sorğuya unikal identifikator verir; audit sətirləri
// bununla korrelyasiya olunur.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()
	}
}

// RequestIDFromContext sorğunun identifikatorunu qaytarır.
func RequestIDFromContext(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
