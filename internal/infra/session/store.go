package session

import (
	"context"

	"mesa-booking/internal/domain/booking"
)

// Store keeps the booking widget state of each visitor session.
// Load returns an error marked errs.ErrSessionNotFound for unknown or expired ids.
type Store interface {
	Load(ctx context.Context, id string) (booking.State, error)
	Save(ctx context.Context, id string, state booking.State) error
	Delete(ctx context.Context, id string) error
}
