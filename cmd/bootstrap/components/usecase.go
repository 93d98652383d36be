package components

import (
	"mesa-booking/internal/pkg/clock"
	"mesa-booking/internal/usecase/booking"
	"mesa-booking/internal/usecase/commands"
	"mesa-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseBookingModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
	),
)

var usecaseBookingModule = fx.Module("usecase/booking",
	fx.Provide(
		func(q queries.AvailabilityQueries) booking.AvailabilityChecker { return q },
		func(c commands.ReservationCommands) booking.ReservationSubmitter { return c },
		booking.NewController,
	),
)
