package components

import (
	"log/slog"

	"mesa-booking/internal/infra/backend"
	"mesa-booking/internal/pkg/config"
	"mesa-booking/internal/usecase/commands"
	"mesa-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

// GatewayModule binds the restaurant backend client to every port it serves.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewBackendClient,
			fx.As(new(queries.TableReader)),
			fx.As(new(queries.ReservationReader)),
			fx.As(new(commands.ReservationWriter)),
			fx.As(new(commands.AuthGateway)),
		),
	),
)

func NewBackendClient(cfg config.Config, logger *slog.Logger) *backend.Client {
	return backend.NewClient(cfg.Backend, logger)
}
