//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mesa-booking/internal/pkg/config"
	"mesa-booking/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenCookie(t *testing.T, expiry time.Duration) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	cookie.SetTokenCookie(c, config.CookieConfig{SameSite: "Lax"}, "tkn", expiry)

	for _, ck := range w.Result().Cookies() {
		if ck.Name == cookie.TokenCookieName {
			return ck
		}
	}
	require.FailNow(t, "token cookie not written")
	return nil
}

func TestSetTokenCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		expiry     time.Duration
		wantValue  string
		wantMaxAge int
	}{
		{name: "stores the token for its lifetime", expiry: 90 * time.Minute, wantValue: "tkn", wantMaxAge: 5400},
		{name: "expired token clears the cookie", expiry: 0, wantMaxAge: -1},
		{name: "negative expiry clears the cookie", expiry: -time.Minute, wantMaxAge: -1},
		{name: "sub-second expiry clears the cookie", expiry: 500 * time.Millisecond, wantMaxAge: -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := tokenCookie(t, c.expiry)
			assert.Equal(t, c.wantValue, got.Value)
			assert.Equal(t, c.wantMaxAge, got.MaxAge)
			assert.True(t, got.HttpOnly)
		})
	}
}
