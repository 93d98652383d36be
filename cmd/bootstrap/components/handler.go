package components

import (
	"log/slog"

	"mesa-booking/internal/handler"
	"mesa-booking/internal/handler/api"
	"mesa-booking/internal/handler/middleware"
	"mesa-booking/internal/pkg/clock"
	"mesa-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		NewHandlers,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, availability *api.AvailabilityHandler, booking *api.BookingHandler) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Availability: availability,
		Booking:      booking,
	}
}

func NewRateLimiter(cfg config.Config, clk clock.Clock, logger *slog.Logger) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit, clk, logger)
}
