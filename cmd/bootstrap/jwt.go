package bootstrap

import (
	"mesa-booking/internal/pkg/config"
	"mesa-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewExpiryReader,
	),
)

func NewExpiryReader(cfg config.Config) *jwt.ExpiryReader {
	if cfg.Cookie.TokenTTL <= 0 {
		panic("invalid TOKEN_COOKIE_TTL: must be positive")
	}
	return jwt.NewExpiryReader(cfg.Cookie.TokenTTL)
}
