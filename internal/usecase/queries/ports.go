package queries

import (
	"context"

	"mesa-booking/internal/domain/reservation"
	"mesa-booking/internal/domain/table"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/queries/ports_mock.go -package=queriesmock

type TableReader interface {
	ListTables(ctx context.Context) ([]table.Table, error)
}

type ReservationReader interface {
	ListReservations(ctx context.Context, date string, at reservation.TimeOfDay) ([]reservation.Slot, error)
	ListReservationsByEmail(ctx context.Context, email string) ([]reservation.Booking, error)
}
