package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnreadableToken = errors.New("unreadable token")
	ErrNoExpiry        = errors.New("token has no expiry")
)

// ExpiryReader reads the exp claim of backend-issued tokens without verifying
// the signature. The backend is the only party that can verify them.
type ExpiryReader struct {
	parser   *jwt.Parser
	fallback time.Duration
}

func NewExpiryReader(fallback time.Duration) *ExpiryReader {
	return &ExpiryReader{
		parser:   jwt.NewParser(),
		fallback: fallback,
	}
}

func (r *ExpiryReader) ExpiresAt(tokenString string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := r.parser.ParseUnverified(tokenString, &claims); err != nil {
		return time.Time{}, ErrUnreadableToken
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}

// TTL returns how long a cookie holding the token should live, falling back to
// the configured duration for opaque or non-expiring tokens.
func (r *ExpiryReader) TTL(tokenString string, now time.Time) time.Duration {
	exp, err := r.ExpiresAt(tokenString)
	if err != nil {
		return r.fallback
	}
	ttl := exp.Sub(now)
	if ttl <= 0 {
		return 0
	}
	return ttl
}
