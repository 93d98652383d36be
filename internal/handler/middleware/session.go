package middleware

import (
	"mesa-booking/internal/pkg/config"
	"mesa-booking/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionIDKey = "session_id"

// BookingSession makes sure every request carries a widget session id and
// refreshes the session cookie.
func BookingSession(cookieCfg config.CookieConfig, sessionCfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := cookie.GetSessionID(c)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
		}

		cookie.SetSessionCookie(c, cookieCfg, sessionID, sessionCfg.TTL)
		c.Set(ctxSessionIDKey, sessionID)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) string {
	return c.GetString(ctxSessionIDKey)
}
