//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// testSecret stands in for the restaurant backend's signing key. The BFF
// never verifies tokens, so any key works.
const testSecret = "backend-test-secret"

// IssueToken mints a token shaped like the ones the restaurant backend returns.
func IssueToken(t *testing.T, email string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": email,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

// IssueTokenWithoutExpiry mints a token with no exp claim.
func IssueTokenWithoutExpiry(t *testing.T, email string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": email}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}
