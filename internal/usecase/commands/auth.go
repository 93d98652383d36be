package commands

import (
	"context"
	"log/slog"
	"time"

	reqdto "mesa-booking/internal/handler/dto/request"
	"mesa-booking/internal/pkg/clock"
	"mesa-booking/internal/pkg/errs"
	"mesa-booking/internal/pkg/jwt"
	"mesa-booking/internal/usecase/shared"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrRegistrationFailed   = errs.New("registration failed")
)

type LoginResult struct {
	Token string
	// TTL is how long the token cookie should live.
	TTL time.Duration
}

type RegisterResult struct {
	Message string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Register(ctx context.Context, req reqdto.RegisterRequest) (*RegisterResult, error)
	GoogleLogin(ctx context.Context, req reqdto.GoogleLoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	gateway AuthGateway
	expiry  *jwt.ExpiryReader
	clock   clock.Clock
	logger  *slog.Logger
}

func NewAuthCommands(gateway AuthGateway, expiry *jwt.ExpiryReader, clock clock.Clock, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		gateway: gateway,
		expiry:  expiry,
		clock:   clock,
		logger:  logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	session, err := a.gateway.Login(ctx, credentials)
	if err != nil {
		return nil, errs.Mark(shared.MarkGatewayErr(err, "login failed"), ErrAuthenticationFailed)
	}

	return a.result(session.Token), nil
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*RegisterResult, error) {
	registration, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	msg, err := a.gateway.Register(ctx, registration)
	if err != nil {
		return nil, errs.Mark(shared.MarkGatewayErr(err, "registration failed"), ErrRegistrationFailed)
	}

	a.logger.Info("Customer registered", slog.String("email", registration.Credentials().Email()))
	return &RegisterResult{Message: msg}, nil
}

func (a *authCommandsImpl) GoogleLogin(ctx context.Context, req reqdto.GoogleLoginRequest) (*LoginResult, error) {
	token, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	session, err := a.gateway.GoogleLogin(ctx, token)
	if err != nil {
		return nil, errs.Mark(shared.MarkGatewayErr(err, "identity login failed"), ErrAuthenticationFailed)
	}

	return a.result(session.Token), nil
}

func (a *authCommandsImpl) result(token string) *LoginResult {
	return &LoginResult{
		Token: token,
		TTL:   a.expiry.TTL(token, a.clock.Now()),
	}
}
