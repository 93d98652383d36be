package queries

import (
	"context"
	"strings"

	"mesa-booking/internal/domain/reservation"
	"mesa-booking/internal/pkg/errs"
	"mesa-booking/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

var ErrEmailRequired = errs.New("email is required")

type ReservationQueries interface {
	ListByEmail(ctx context.Context, email string) ([]reservation.Booking, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReader
}

func NewReservationQueries(reservations ReservationReader) ReservationQueries {
	return &reservationQueriesImpl{reservations: reservations}
}

func (q *reservationQueriesImpl) ListByEmail(ctx context.Context, email string) ([]reservation.Booking, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	bookings, err := q.reservations.ListReservationsByEmail(ctx, email)
	if err != nil {
		return nil, shared.MarkGatewayErr(err, "failed to list reservations by email")
	}
	if bookings == nil {
		bookings = []reservation.Booking{}
	}
	return bookings, nil
}
