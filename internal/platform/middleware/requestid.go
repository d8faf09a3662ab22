package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ghoststack/bizboost/internal/platform/requestid"
)

// RequestID assigns a unique request ID to each request. If the incoming
// request already carries an X-Request-ID header, that value is reused;
// otherwise a new UUID v4 is generated. The ID is stored on the request
// context and echoed back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		ctx := requestid.NewContext(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()
	}
}
