package backend

import (
	"context"

	"mesa-booking/internal/domain/auth"
)

func (c *Client) Login(ctx context.Context, creds auth.Credentials) (auth.Session, error) {
	var resp tokenResponse
	err := c.post(ctx, c.authPath("login"), loginRequest{
		Email:    creds.Email(),
		Password: creds.Password(),
	}, &resp)
	if err != nil {
		return auth.Session{}, err
	}
	return c.session(resp, "/login")
}

func (c *Client) Register(ctx context.Context, reg auth.Registration) (string, error) {
	var resp tokenResponse
	err := c.post(ctx, c.authPath("register"), registerRequest{
		Nombre:   reg.Name(),
		Email:    reg.Credentials().Email(),
		Password: reg.Credentials().Password(),
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) GoogleLogin(ctx context.Context, token auth.IdentityToken) (auth.Session, error) {
	var resp tokenResponse
	err := c.post(ctx, c.authPath("google-login"), identityRequest{Token: token.String()}, &resp)
	if err != nil {
		return auth.Session{}, err
	}
	return c.session(resp, "/google-login")
}

func (c *Client) session(resp tokenResponse, path string) (auth.Session, error) {
	if resp.Token == "" {
		return auth.Session{}, wrapErr(c.logger, KindMalformed, 0, "", path+" response has no token", nil)
	}
	return auth.Session{Token: resp.Token}, nil
}
