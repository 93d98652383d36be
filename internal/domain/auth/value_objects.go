package auth

import (
	"errors"
	"strings"
)

var (
	ErrEmptyEmail         = errors.New("email cannot be empty")
	ErrEmptyPassword      = errors.New("password cannot be empty")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrEmptyIdentityToken = errors.New("identity token cannot be empty")
)

type Credentials struct {
	email    string
	password string
}

func NewCredentials(email, password string) (Credentials, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Credentials{}, ErrEmptyEmail
	}
	if password == "" {
		return Credentials{}, ErrEmptyPassword
	}
	return Credentials{email: email, password: password}, nil
}

func (c Credentials) Email() string    { return c.email }
func (c Credentials) Password() string { return c.password }

type Registration struct {
	name        string
	credentials Credentials
}

func NewRegistration(name, email, password string) (Registration, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Registration{}, ErrEmptyName
	}
	creds, err := NewCredentials(email, password)
	if err != nil {
		return Registration{}, err
	}
	return Registration{name: name, credentials: creds}, nil
}

func (r Registration) Name() string             { return r.name }
func (r Registration) Credentials() Credentials { return r.credentials }

// IdentityToken is what the third-party identity provider hands the browser
// after its popup flow. It is passed through to the backend untouched.
type IdentityToken string

func NewIdentityToken(raw string) (IdentityToken, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyIdentityToken
	}
	return IdentityToken(raw), nil
}

func (t IdentityToken) String() string { return string(t) }

// Session is the outcome of a successful login: the backend-issued token.
type Session struct {
	Token string
}
