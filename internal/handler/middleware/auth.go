package middleware

import (
	"strings"

	"mesa-booking/internal/pkg/authctx"
	"mesa-booking/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

const ctxHasTokenKey = "has_token"

// TokenPassthrough moves the visitor's backend token onto the request
// context. The token is not inspected; the backend decides what it is worth.
func TokenPassthrough() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token != "" {
			c.Request = c.Request.WithContext(authctx.WithToken(c.Request.Context(), token))
			c.Set(ctxHasTokenKey, true)
		}
		c.Next()
	}
}

func HasToken(c *gin.Context) bool {
	return c.GetBool(ctxHasTokenKey)
}
