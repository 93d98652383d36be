package commands

import (
	"context"
	"log/slog"
	"time"

	"mesa-booking/internal/domain/reservation"
	"mesa-booking/internal/pkg/errs"
	"mesa-booking/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

var ErrInvalidSubmission = errs.New("invalid reservation submission")

type ReservationCommands interface {
	Submit(ctx context.Context, sub reservation.Submission) (*reservation.Receipt, error)
}

type reservationCommandsImpl struct {
	writer ReservationWriter
	logger *slog.Logger
}

func NewReservationCommands(writer ReservationWriter, logger *slog.Logger) ReservationCommands {
	return &reservationCommandsImpl{
		writer: writer,
		logger: logger,
	}
}

func (r *reservationCommandsImpl) Submit(ctx context.Context, sub reservation.Submission) (*reservation.Receipt, error) {
	if err := validateSubmission(sub); err != nil {
		return nil, errs.Mark(err, ErrInvalidSubmission)
	}

	receipt, err := r.writer.CreateReservation(ctx, sub)
	if err != nil {
		return nil, shared.MarkGatewayErr(err, "failed to create reservation")
	}

	r.logger.Info("Reservation created",
		slog.String("reservation_id", receipt.ReservationID),
		slog.String("table_id", sub.TableID.String()),
		slog.String("date", sub.Date),
		slog.String("time", sub.Time.String()))

	return receipt, nil
}

func validateSubmission(sub reservation.Submission) error {
	if sub.TableID.IsZero() {
		return errs.New("table is required")
	}
	if sub.PartySize < 1 {
		return errs.New("party size must be positive")
	}
	if _, err := time.Parse(reservation.DateLayout, sub.Date); err != nil {
		return errs.Wrap(err, "invalid date")
	}
	if !sub.Time.IsValid() {
		return errs.New("invalid time")
	}
	if sub.Customer.Name == "" || sub.Customer.Email == "" || sub.Customer.Phone == "" {
		return errs.New("customer details are required")
	}
	return nil
}
