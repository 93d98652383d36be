package components

import (
	"fmt"

	widget "mesa-booking/internal/domain/booking"
	"mesa-booking/internal/domain/reservation"
	"mesa-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		NewPolicy,
		reservation.NewGuard,
		NewMachine,
	),
)

// NewPolicy builds the booking rules from BOOKING_* settings.
func NewPolicy(cfg config.Config) (reservation.Policy, error) {
	opens, err := reservation.ParseTimeOfDay(cfg.Booking.OpensAt)
	if err != nil {
		return reservation.Policy{}, fmt.Errorf("invalid BOOKING_OPENS_AT %q: %w", cfg.Booking.OpensAt, err)
	}
	last, err := reservation.ParseTimeOfDay(cfg.Booking.LastStart)
	if err != nil {
		return reservation.Policy{}, fmt.Errorf("invalid BOOKING_LAST_START %q: %w", cfg.Booking.LastStart, err)
	}
	if last < opens {
		return reservation.Policy{}, fmt.Errorf("BOOKING_LAST_START %s is before BOOKING_OPENS_AT %s", last, opens)
	}
	loc, err := cfg.Booking.Location()
	if err != nil {
		return reservation.Policy{}, err
	}
	if cfg.Booking.ServiceDuration <= 0 {
		return reservation.Policy{}, fmt.Errorf("invalid BOOKING_SERVICE_DURATION %s", cfg.Booking.ServiceDuration)
	}

	return reservation.Policy{
		ServiceDuration: cfg.Booking.ServiceDuration,
		OpensAt:         opens,
		LastStart:       last,
		Location:        loc,
	}, nil
}

func NewMachine(guard *reservation.Guard, cfg config.Config) *widget.Machine {
	guest := reservation.Customer{
		Name:  cfg.Booking.GuestName,
		Email: cfg.Booking.GuestEmail,
		Phone: cfg.Booking.GuestPhone,
	}
	return widget.NewMachine(guard, guest, cfg.Booking.ResetDelay)
}
