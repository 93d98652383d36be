package bootstrap

import (
	"context"
	"log/slog"

	"mesa-booking/internal/infra/session"
	"mesa-booking/internal/pkg/clock"
	"mesa-booking/internal/pkg/config"
	"mesa-booking/internal/usecase/booking"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionStore,
	),
)

// NewSessionStore picks the widget state store named by SESSION_STORE.
func NewSessionStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (booking.SessionStore, error) {
	if cfg.Session.Store != "redis" {
		logger.Info("Using in-memory booking sessions", "ttl", cfg.Session.TTL)
		return session.NewMemoryStore(cfg.Session.TTL, clk), nil
	}

	client, cleanup, err := session.Connect(cfg.Session)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	logger.Info("Using redis booking sessions", "addr", cfg.Session.RedisAddr, "ttl", cfg.Session.TTL)
	return session.NewRedisStore(client, cfg.Session.TTL), nil
}
