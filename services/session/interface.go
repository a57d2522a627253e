package session

import (
	"context"

	"barberbook/models"
)

// AuthAPI is the slice of the backend client the session service needs.
type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
	Register(ctx context.Context, reg models.Registration) (*models.Session, error)
	Me(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, token string, update models.ProfileUpdate) (*models.User, error)
	UpdatePassword(ctx context.Context, token string, update models.PasswordUpdate) error
}

// Service manages the cached authentication state for each client session.
type Service interface {
	Login(ctx context.Context, clientID string, creds models.Credentials) (*models.Session, error)
	Register(ctx context.Context, clientID string, reg models.Registration) (*models.Session, error)
	Logout(ctx context.Context, clientID string) error
	// Current returns the cached session, or nil when the client is not
	// authenticated. Malformed or expired cached data is purged.
	Current(ctx context.Context, clientID string) *models.Session
	// HasRoleAccess reports whether the client holds a valid session whose
	// user has the given role.
	HasRoleAccess(ctx context.Context, clientID, role string) bool
	UpdateProfile(ctx context.Context, clientID string, update models.ProfileUpdate) (*models.User, error)
	UpdatePassword(ctx context.Context, clientID string, update models.PasswordUpdate) error
}
