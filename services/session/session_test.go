package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"barberbook/backend"
	"barberbook/models"
	"barberbook/store"
	"barberbook/utils"

	"go.uber.org/zap"
)

type fakeAuthAPI struct {
	session   *models.Session
	loginErr  error
	updated   *models.User
	updateErr error
	lastToken string
}

func (f *fakeAuthAPI) Login(_ context.Context, _ models.Credentials) (*models.Session, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.session, nil
}

func (f *fakeAuthAPI) Register(_ context.Context, _ models.Registration) (*models.Session, error) {
	return f.session, nil
}

func (f *fakeAuthAPI) Me(_ context.Context, token string) (*models.User, error) {
	f.lastToken = token
	return &f.session.User, nil
}

func (f *fakeAuthAPI) UpdateProfile(_ context.Context, token string, _ models.ProfileUpdate) (*models.User, error) {
	f.lastToken = token
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updated, nil
}

func (f *fakeAuthAPI) UpdatePassword(_ context.Context, token string, _ models.PasswordUpdate) error {
	f.lastToken = token
	return f.updateErr
}

// testToken builds an unsigned JWT with the given subject and expiry claims.
func testToken(t *testing.T, sub string, exp int64) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(map[string]any{"sub": sub, "exp": exp})
	if err != nil {
		t.Fatal(err)
	}
	return fmt.Sprintf("%s.%s.sig", header, base64.RawURLEncoding.EncodeToString(payload))
}

func newTestSessions(api *fakeAuthAPI) (*DefaultSessionService, store.KV) {
	kv := store.NewMemoryKV()
	return &DefaultSessionService{API: api, Store: kv, Logger: zap.NewNop()}, kv
}

func TestLoginCachesSession(t *testing.T) {
	ctx := context.Background()
	token := testToken(t, "u1", time.Now().Add(time.Hour).Unix())
	api := &fakeAuthAPI{session: &models.Session{
		Token: token,
		User:  models.User{ID: "u1", Name: "Jo", Email: "jo@x.test", Role: models.RoleUser},
	}}
	svc, _ := newTestSessions(api)

	sess, err := svc.Login(ctx, "c1", models.Credentials{Email: "jo@x.test", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.User.ID != "u1" {
		t.Fatalf("unexpected session user: %+v", sess.User)
	}

	cached := svc.Current(ctx, "c1")
	if cached == nil || cached.Token != token {
		t.Fatalf("session not cached: %+v", cached)
	}
	if !svc.HasRoleAccess(ctx, "c1", models.RoleUser) {
		t.Fatal("expected role access for the cached session")
	}
	if svc.HasRoleAccess(ctx, "c1", "admin") {
		t.Fatal("role access must match the user's role")
	}
}

func TestCurrentPurgesMalformedSession(t *testing.T) {
	ctx := context.Background()
	svc, kv := newTestSessions(&fakeAuthAPI{})

	kv.Set(ctx, utils.SessionKeyPrefix+"c1", "{broken", 0)
	if sess := svc.Current(ctx, "c1"); sess != nil {
		t.Fatalf("malformed session must read as unauthenticated, got %+v", sess)
	}
	if _, err := kv.Get(ctx, utils.SessionKeyPrefix+"c1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("malformed session should be purged, got %v", err)
	}
	if svc.HasRoleAccess(ctx, "c1", models.RoleUser) {
		t.Fatal("no session, no access")
	}
}

func TestCurrentPurgesExpiredToken(t *testing.T) {
	ctx := context.Background()
	token := testToken(t, "u1", time.Now().Add(-time.Hour).Unix())
	svc, kv := newTestSessions(&fakeAuthAPI{})

	data, _ := json.Marshal(models.Session{Token: token, User: models.User{ID: "u1", Role: models.RoleUser}})
	kv.Set(ctx, utils.SessionKeyPrefix+"c1", string(data), 0)

	if sess := svc.Current(ctx, "c1"); sess != nil {
		t.Fatalf("expired session must read as unauthenticated, got %+v", sess)
	}
	if _, err := kv.Get(ctx, utils.SessionKeyPrefix+"c1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expired session should be purged, got %v", err)
	}
}

func TestCurrentPurgesMismatchedSubject(t *testing.T) {
	ctx := context.Background()
	token := testToken(t, "u2", time.Now().Add(time.Hour).Unix())
	svc, kv := newTestSessions(&fakeAuthAPI{})

	data, _ := json.Marshal(models.Session{Token: token, User: models.User{ID: "u1", Role: models.RoleUser}})
	kv.Set(ctx, utils.SessionKeyPrefix+"c1", string(data), 0)

	if sess := svc.Current(ctx, "c1"); sess != nil {
		t.Fatalf("session whose token belongs to another user must not be served, got %+v", sess)
	}
	if _, err := kv.Get(ctx, utils.SessionKeyPrefix+"c1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("mismatched session should be purged, got %v", err)
	}
}

func TestLogoutDropsSession(t *testing.T) {
	ctx := context.Background()
	token := testToken(t, "u1", time.Now().Add(time.Hour).Unix())
	api := &fakeAuthAPI{session: &models.Session{Token: token, User: models.User{ID: "u1", Role: models.RoleUser}}}
	svc, _ := newTestSessions(api)

	svc.Login(ctx, "c1", models.Credentials{Email: "jo@x.test", Password: "pw"})
	if err := svc.Logout(ctx, "c1"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if sess := svc.Current(ctx, "c1"); sess != nil {
		t.Fatalf("session survives logout: %+v", sess)
	}
}

func TestPurgeOnAuthError(t *testing.T) {
	ctx := context.Background()
	token := testToken(t, "u1", time.Now().Add(time.Hour).Unix())
	api := &fakeAuthAPI{session: &models.Session{Token: token, User: models.User{ID: "u1", Role: models.RoleUser}}}
	svc, _ := newTestSessions(api)

	svc.Login(ctx, "c1", models.Credentials{Email: "jo@x.test", Password: "pw"})
	PurgeOnAuthError(ctx, svc, "c1", errors.New("timeout"))
	if svc.Current(ctx, "c1") == nil {
		t.Fatal("a non-auth error must not purge the session")
	}

	PurgeOnAuthError(ctx, svc, "c1", backend.ErrUnauthorized)
	if svc.Current(ctx, "c1") != nil {
		t.Fatal("a backend token rejection must purge the session")
	}
}

func TestUpdateProfileRefreshesCacheAndPurgesOn401(t *testing.T) {
	ctx := context.Background()
	token := testToken(t, "u1", time.Now().Add(time.Hour).Unix())
	api := &fakeAuthAPI{
		session: &models.Session{Token: token, User: models.User{ID: "u1", Name: "Jo", Role: models.RoleUser}},
		updated: &models.User{ID: "u1", Name: "Joanna", Role: models.RoleUser},
	}
	svc, _ := newTestSessions(api)
	svc.Login(ctx, "c1", models.Credentials{Email: "jo@x.test", Password: "pw"})

	user, err := svc.UpdateProfile(ctx, "c1", models.ProfileUpdate{Name: "Joanna"})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if user.Name != "Joanna" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if api.lastToken != token {
		t.Fatalf("backend call must carry the cached token, got %q", api.lastToken)
	}
	if sess := svc.Current(ctx, "c1"); sess == nil || sess.User.Name != "Joanna" {
		t.Fatalf("cache not refreshed: %+v", sess)
	}

	// A 401 from the backend invalidates the cached session.
	api.updateErr = backend.ErrUnauthorized
	if _, err := svc.UpdateProfile(ctx, "c1", models.ProfileUpdate{Name: "x"}); !errors.Is(err, backend.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if sess := svc.Current(ctx, "c1"); sess != nil {
		t.Fatalf("401 must purge the cached session, got %+v", sess)
	}
}
