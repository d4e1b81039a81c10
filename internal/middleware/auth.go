package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"financial-coach/internal/auth"
	"financial-coach/pkg/response"
)

const userIDKey = "user_id"

// Auth resolves the caller's user id and stores it in the gin context.
// In dev mode every caller is DevUserID. When auth is optional and no token is sent,
// the request passes without a user id and handlers fall back to the body.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.authConfig.DevMode {
			c.Set(userIDKey, auth.DevUserID)
			c.Next()
			return
		}

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" && !m.authConfig.Required {
			c.Next()
			return
		}

		userID, err := m.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the user id set by Auth, or "" when none was resolved.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
