package queries

import (
	"context"
	"log/slog"

	"mesa-booking/internal/domain/reservation"
	"mesa-booking/internal/domain/table"
	"mesa-booking/internal/infra/backend"
	"mesa-booking/internal/pkg/clock"
	"mesa-booking/internal/pkg/errs"
	"mesa-booking/internal/usecase/shared"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability_mock.go -package=queriesmock

type AvailabilityResult struct {
	Request        reservation.Request
	Tables         []table.Availability
	AvailableCount int
}

type AvailabilityQueries interface {
	// Search runs the pre-check on raw input before looking anything up.
	Search(ctx context.Context, in reservation.Input) (*AvailabilityResult, error)
	Check(ctx context.Context, req reservation.Request) ([]table.Availability, error)
}

type availabilityQueriesImpl struct {
	tables       TableReader
	reservations ReservationReader
	guard        *reservation.Guard
	clock        clock.Clock
	logger       *slog.Logger
}

func NewAvailabilityQueries(
	tables TableReader,
	reservations ReservationReader,
	guard *reservation.Guard,
	clock clock.Clock,
	logger *slog.Logger,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		tables:       tables,
		reservations: reservations,
		guard:        guard,
		clock:        clock,
		logger:       logger,
	}
}

func (q *availabilityQueriesImpl) Search(ctx context.Context, in reservation.Input) (*AvailabilityResult, error) {
	req, err := q.guard.Check(in, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidBookingRequest)
	}

	tables, err := q.Check(ctx, req)
	if err != nil {
		return nil, err
	}

	return &AvailabilityResult{
		Request:        req,
		Tables:         tables,
		AvailableCount: table.CountAvailable(tables),
	}, nil
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, req reservation.Request) ([]table.Availability, error) {
	tables, err := q.tables.ListTables(ctx)
	if err != nil {
		return nil, shared.MarkGatewayErr(err, "failed to list tables")
	}

	slots, err := q.reservations.ListReservations(ctx, req.Date, req.Time)
	if err != nil {
		if backend.IsKind(err, backend.KindUnavailable) {
			return nil, shared.MarkGatewayErr(err, "failed to list reservations")
		}
		// A failed reservations lookup counts as no reservations.
		q.logger.Warn("Reservations lookup failed, treating tables as free",
			slog.String("date", req.Date),
			slog.String("time", req.Time.String()),
			slog.String("error", err.Error()))
		slots = nil
	}

	slots = reservation.OnDate(slots, req.Date)
	return q.guard.Policy().Filter(tables, slots, req.Time, req.PartySize), nil
}
