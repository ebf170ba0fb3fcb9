package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oksasatya/go-ddd-resource-api/pkg/response"
)

const (
	HeaderRequestID = "X-Request-ID"
	CtxRequestID    = response.RequestIDKey
)

// RequestIDMiddleware tags each request with an id, reusing a caller-supplied
// one only when it parses as a UUID.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
