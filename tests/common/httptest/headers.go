//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertCookie checks that name was set HttpOnly with the given value and
// returns its max-age.
func AssertCookie(t *testing.T, w *httptest.ResponseRecorder, name, value string) int {
	t.Helper()
	cookie := ExtractCookie(w, name)
	require.NotNil(t, cookie, "cookie %s not set", name)
	assert.True(t, cookie.HttpOnly, "cookie %s must be HttpOnly", name)
	if value != "" {
		assert.Equal(t, value, cookie.Value, "cookie %s value mismatch", name)
	}
	return cookie.MaxAge
}
