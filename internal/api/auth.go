package api

import (
	"context"
	"net/http"

	"midnight-auction/internal/models"
)

// Register creates an account and returns its profile with an access token
func (c *Client) Register(ctx context.Context, creds models.RegisterCredentials) (models.Envelope[models.AuthResult], error) {
	return call[models.AuthResult](ctx, c, http.MethodPost, "/auth/register", nil, creds)
}

// Login exchanges credentials for a profile and an access token
func (c *Client) Login(ctx context.Context, creds models.LoginCredentials) (models.Envelope[models.AuthResult], error) {
	return call[models.AuthResult](ctx, c, http.MethodPost, "/auth/login", nil, creds)
}
