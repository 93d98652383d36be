//go:build unit

package middleware_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mesa-booking/internal/handler/httperr"
	"mesa-booking/internal/handler/middleware"
	"mesa-booking/internal/pkg/authctx"
	"mesa-booking/internal/pkg/clock"
	"mesa-booking/internal/pkg/config"
	"mesa-booking/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newLimiterRouter(limiter *middleware.RateLimiter) func(ip string) int {
	router := gin.New()
	router.Use(limiter.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	return func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = ip + ":1234"
		return serve(router, req).Code
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clk := clock.NewMockClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	cfg := config.RateLimitConfig{RequestsPerMinute: 1, Burst: 2, IdleTTL: 10 * time.Minute}
	request := newLimiterRouter(middleware.NewRateLimiter(cfg, clk, discardLogger))

	assert.Equal(t, http.StatusOK, request("10.0.0.1"))
	assert.Equal(t, http.StatusOK, request("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, request("10.0.0.1"))

	// other clients keep their own budget
	assert.Equal(t, http.StatusOK, request("10.0.0.2"))

	clk.Add(time.Minute)
	assert.Equal(t, http.StatusOK, request("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, request("10.0.0.1"))
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clk := clock.NewMockClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	cfg := config.RateLimitConfig{RequestsPerMinute: 1, Burst: 1, IdleTTL: 10 * time.Minute}
	limiter := middleware.NewRateLimiter(cfg, clk, discardLogger)
	request := newLimiterRouter(limiter)

	for i := range 5 {
		require.Equal(t, http.StatusOK, request(fmt.Sprintf("10.0.1.%d", i)))
	}
	require.Equal(t, 5, limiter.Tracked())

	clk.Add(5 * time.Minute)
	require.Equal(t, http.StatusOK, request("10.0.2.1"))
	assert.Equal(t, 6, limiter.Tracked(), "no sweep before the idle ttl")

	clk.Add(6 * time.Minute)
	require.Equal(t, http.StatusOK, request("10.0.2.2"))
	assert.Equal(t, 2, limiter.Tracked(), "only clients seen within the idle ttl remain")
}

func TestRateLimiter_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{}, clock.NewRealClock(), discardLogger)
	request := newLimiterRouter(limiter)

	for range 50 {
		require.Equal(t, http.StatusOK, request("192.0.2.1"))
	}
	assert.Equal(t, 1, limiter.Tracked())
}

func TestTokenPassthrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotToken string
	var gotOK, hasToken bool
	router := gin.New()
	router.Use(middleware.TokenPassthrough())
	router.GET("/", func(c *gin.Context) {
		gotToken, gotOK = authctx.Token(c.Request.Context())
		hasToken = middleware.HasToken(c)
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name      string
		cookie    string
		header    string
		wantToken string
	}{
		{name: "cookie", cookie: "from-cookie", wantToken: "from-cookie"},
		{name: "bearer header", header: "Bearer from-header", wantToken: "from-header"},
		{name: "cookie wins over header", cookie: "from-cookie", header: "Bearer from-header", wantToken: "from-cookie"},
		{name: "non bearer header ignored", header: "Basic abc"},
		{name: "anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotToken, gotOK, hasToken = "", false, false

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: cookie.TokenCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			serve(router, req)

			assert.Equal(t, tt.wantToken, gotToken)
			assert.Equal(t, tt.wantToken != "", gotOK)
			assert.Equal(t, tt.wantToken != "", hasToken)
		})
	}
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	router.GET("/public", func(c *gin.Context) {
		_ = c.Error(&gin.Error{
			Err:  errors.New("boom"),
			Type: gin.ErrorTypePublic,
			Meta: func() httperr.Response {
				r := httperr.Response{Status: http.StatusConflict}
				r.Error.Message = "conflict"
				return r
			}(),
		})
	})
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/public", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":{"message":"conflict"}}`, w.Body.String())

	w = serve(router, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
}
