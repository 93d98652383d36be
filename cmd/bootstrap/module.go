package bootstrap

import (
	"mesa-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	SessionModule,
	JWTModule,
	components.GatewayModule,
	components.DomainModule,
	components.UseCaseModule,
	components.HandlerModule,
)
