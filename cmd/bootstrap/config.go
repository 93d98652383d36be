package bootstrap

import (
	"fmt"
	"net/url"

	"mesa-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(validateConfig),
)

// validateConfig fails startup on settings envconfig cannot check by itself.
func validateConfig(cfg config.Config) error {
	u, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid BACKEND_BASE_URL %q", cfg.Backend.BaseURL)
	}
	if _, err := cfg.Booking.Location(); err != nil {
		return err
	}
	switch cfg.Session.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("invalid SESSION_STORE %q: want memory or redis", cfg.Session.Store)
	}
	return nil
}
