package cookie

import (
	"net/http"
	"time"

	"mesa-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	// TokenCookieName is the fixed key the backend token is kept under.
	TokenCookieName   = "token"
	SessionCookieName = "booking_session"
)

// SetTokenCookie stores token for expiry. A token with less than a second
// left is not stored and any previous token cookie is cleared.
func SetTokenCookie(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	if expiry < time.Second {
		ClearTokenCookie(c, cfg)
		return
	}
	setCookie(c, cfg, TokenCookieName, token, int(expiry.Seconds()))
}

func ClearTokenCookie(c *gin.Context, cfg config.CookieConfig) {
	setCookie(c, cfg, TokenCookieName, "", -1)
}

func GetToken(c *gin.Context) string {
	token, _ := c.Cookie(TokenCookieName)
	return token
}

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, sessionID string, ttl time.Duration) {
	setCookie(c, cfg, SessionCookieName, sessionID, int(ttl.Seconds()))
}

func GetSessionID(c *gin.Context) string {
	id, _ := c.Cookie(SessionCookieName)
	return id
}

func setCookie(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		name,
		value,
		maxAge,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
