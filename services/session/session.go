// File: barberbook/services/session/session.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"barberbook/backend"
	"barberbook/models"
	"barberbook/store"
	"barberbook/utils"

	"go.uber.org/zap"
)

// DefaultSessionService implements Service over a KV store and the backend
// auth endpoints.
type DefaultSessionService struct {
	API    AuthAPI
	Store  store.KV
	Logger *zap.Logger
}

func sessionKey(clientID string) string {
	return utils.SessionKeyPrefix + clientID
}

func (s *DefaultSessionService) save(ctx context.Context, clientID string, sess *models.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.Store.Set(ctx, sessionKey(clientID), string(data), utils.SessionTTL); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Login authenticates against the backend and caches the resulting session.
func (s *DefaultSessionService) Login(ctx context.Context, clientID string, creds models.Credentials) (*models.Session, error) {
	sess, err := s.API.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, clientID, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Register creates an account and caches the resulting session.
func (s *DefaultSessionService) Register(ctx context.Context, clientID string, reg models.Registration) (*models.Session, error) {
	sess, err := s.API.Register(ctx, reg)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, clientID, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Logout purges the cached session.
func (s *DefaultSessionService) Logout(ctx context.Context, clientID string) error {
	return s.Store.Del(ctx, sessionKey(clientID))
}

// Current returns the cached session, treating malformed or expired data as
// unauthenticated and purging it.
func (s *DefaultSessionService) Current(ctx context.Context, clientID string) *models.Session {
	data, err := s.Store.Get(ctx, sessionKey(clientID))
	if err != nil {
		return nil
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil || sess.Token == "" {
		s.Logger.Warn("purging malformed cached session", zap.String("clientID", clientID))
		_ = s.Store.Del(ctx, sessionKey(clientID))
		return nil
	}
	if utils.TokenExpired(sess.Token) {
		s.Logger.Debug("purging expired session", zap.String("clientID", clientID))
		_ = s.Store.Del(ctx, sessionKey(clientID))
		return nil
	}
	// The token's subject is the user id; a cached profile that disagrees
	// with its own token is as untrustworthy as malformed JSON.
	if sub, err := utils.TokenSubject(sess.Token); err == nil && sub != sess.User.ID {
		s.Logger.Warn("purging session with mismatched token subject",
			zap.String("clientID", clientID))
		_ = s.Store.Del(ctx, sessionKey(clientID))
		return nil
	}
	return &sess
}

// HasRoleAccess reports whether the client is authenticated with the role.
func (s *DefaultSessionService) HasRoleAccess(ctx context.Context, clientID, role string) bool {
	sess := s.Current(ctx, clientID)
	return sess != nil && sess.User.Role == role
}

// UpdateProfile forwards the change to the backend and refreshes the cache.
// A backend 401 purges the session so the client is forced to log in again.
func (s *DefaultSessionService) UpdateProfile(ctx context.Context, clientID string, update models.ProfileUpdate) (*models.User, error) {
	sess := s.Current(ctx, clientID)
	if sess == nil {
		return nil, backend.ErrUnauthorized
	}
	user, err := s.API.UpdateProfile(ctx, sess.Token, update)
	if err != nil {
		PurgeOnAuthError(ctx, s, clientID, err)
		return nil, err
	}
	sess.User = *user
	if err := s.save(ctx, clientID, sess); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword forwards the change to the backend.
func (s *DefaultSessionService) UpdatePassword(ctx context.Context, clientID string, update models.PasswordUpdate) error {
	sess := s.Current(ctx, clientID)
	if sess == nil {
		return backend.ErrUnauthorized
	}
	err := s.API.UpdatePassword(ctx, sess.Token, update)
	PurgeOnAuthError(ctx, s, clientID, err)
	return err
}

// PurgeOnAuthError drops the cached session when the backend rejected its
// token. Every authenticated backend call routes its error through here so
// a revoked token logs the client out instead of looping on 401s.
func PurgeOnAuthError(ctx context.Context, sessions Service, clientID string, err error) {
	if errors.Is(err, backend.ErrUnauthorized) {
		_ = sessions.Logout(ctx, clientID)
	}
}
