package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"financial-coach/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags each request with an id, echoed in the response and attached to every log line as trace_id.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}

		c.Writer.Header().Set(requestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithTraceID(c.Request.Context(), id))
		c.Next()
	}
}
