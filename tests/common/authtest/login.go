//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"mesa-booking/internal/handler/dto/request"
	"mesa-booking/internal/pkg/cookie"
	"mesa-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginVisitor logs in through the BFF and returns the token cookie.
func LoginVisitor(t *testing.T, router *gin.Engine, email, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	tokenCookie := httptest.ExtractCookie(w, cookie.TokenCookieName)
	require.NotNil(t, tokenCookie, "token cookie not set")
	require.NotEmpty(t, tokenCookie.Value, "token cookie is empty")
	return tokenCookie
}
