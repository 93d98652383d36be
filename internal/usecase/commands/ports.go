package commands

import (
	"context"

	"mesa-booking/internal/domain/auth"
	"mesa-booking/internal/domain/reservation"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// Write-side gateway ports, implemented by the backend client.

type ReservationWriter interface {
	CreateReservation(ctx context.Context, sub reservation.Submission) (*reservation.Receipt, error)
}

type AuthGateway interface {
	Login(ctx context.Context, creds auth.Credentials) (auth.Session, error)
	Register(ctx context.Context, reg auth.Registration) (string, error)
	GoogleLogin(ctx context.Context, token auth.IdentityToken) (auth.Session, error)
}
