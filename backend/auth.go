package backend

import (
	"context"
	"net/http"

	"barberbook/models"
)

// authResponse is the backend's shape for login and register.
type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login exchanges credentials for a token and profile.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", creds, &resp); err != nil {
		return nil, err
	}
	return &models.Session{Token: resp.Token, User: resp.User}, nil
}

// Register creates a new customer account.
func (c *Client) Register(ctx context.Context, reg models.Registration) (*models.Session, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", reg, &resp); err != nil {
		return nil, err
	}
	return &models.Session{Token: resp.Token, User: resp.User}, nil
}

// Me fetches the profile for the given token.
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile saves editable profile fields and returns the fresh profile.
func (c *Client) UpdateProfile(ctx context.Context, token string, update models.ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPut, "/auth/update-profile", token, update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword changes the account password.
func (c *Client) UpdatePassword(ctx context.Context, token string, update models.PasswordUpdate) error {
	return c.do(ctx, http.MethodPatch, "/auth/update-password", token, update, nil)
}
