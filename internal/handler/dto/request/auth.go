package request

import (
	"mesa-booking/internal/domain/auth"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *RegisterRequest) ToDomain() (auth.Registration, error) {
	return auth.NewRegistration(r.Name, r.Email, r.Password)
}

// GoogleLoginRequest carries the identity token obtained by the browser popup.
type GoogleLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

func (r *GoogleLoginRequest) ToDomain() (auth.IdentityToken, error) {
	return auth.NewIdentityToken(r.Token)
}
