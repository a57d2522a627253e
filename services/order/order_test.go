package order

import (
	"context"
	"errors"
	"testing"

	"barberbook/backend"
	"barberbook/models"
	"barberbook/services/cart"
	"barberbook/store"

	"go.uber.org/zap"
)

type fakeOrderAPI struct {
	order      *models.Order
	createErr  error
	historyErr error
	lastReq    models.OrderRequest
	lastToken  string
}

func (f *fakeOrderAPI) CreateOrder(_ context.Context, token string, req models.OrderRequest) (*models.Order, error) {
	f.lastToken = token
	f.lastReq = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.order, nil
}

func (f *fakeOrderAPI) OrderByID(_ context.Context, token, _ string) (*models.Order, error) {
	f.lastToken = token
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return f.order, nil
}

func (f *fakeOrderAPI) MyOrders(_ context.Context, token string) ([]models.Order, error) {
	f.lastToken = token
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return []models.Order{*f.order}, nil
}

type fakeSessions struct {
	sess *models.Session
}

func (f *fakeSessions) Current(_ context.Context, _ string) *models.Session { return f.sess }
func (f *fakeSessions) Login(_ context.Context, _ string, _ models.Credentials) (*models.Session, error) {
	return f.sess, nil
}
func (f *fakeSessions) Register(_ context.Context, _ string, _ models.Registration) (*models.Session, error) {
	return f.sess, nil
}
func (f *fakeSessions) Logout(_ context.Context, _ string) error {
	f.sess = nil
	return nil
}
func (f *fakeSessions) HasRoleAccess(_ context.Context, _, _ string) bool {
	return f.sess != nil
}
func (f *fakeSessions) UpdateProfile(_ context.Context, _ string, _ models.ProfileUpdate) (*models.User, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeSessions) UpdatePassword(_ context.Context, _ string, _ models.PasswordUpdate) error {
	return errors.New("not implemented")
}

var codInput = CheckoutInput{
	PaymentMethod:   models.PaymentCashOnDelivery,
	ShippingName:    "Jo",
	ShippingAddress: "1 Main St",
	Email:           "jo@x.test",
}

func newTestOrderService(api *fakeOrderAPI, sessions *fakeSessions) (*DefaultOrderService, cart.Service) {
	carts := &cart.DefaultCartService{Store: store.NewMemoryKV(), Logger: zap.NewNop()}
	return &DefaultOrderService{
		API:      api,
		Cart:     carts,
		Sessions: sessions,
		Logger:   zap.NewNop(),
	}, carts
}

func TestCheckoutEmptyCart(t *testing.T) {
	api := &fakeOrderAPI{order: &models.Order{ID: "o1"}}
	svc, _ := newTestOrderService(api, &fakeSessions{})

	if _, err := svc.Checkout(context.Background(), "c1", codInput); err == nil {
		t.Fatal("expected an error for an empty cart")
	}
	if api.lastReq.Total != 0 || len(api.lastReq.Items) != 0 {
		t.Fatal("empty cart must not reach the backend")
	}
}

func TestCheckoutPayPalRequiresCapture(t *testing.T) {
	ctx := context.Background()
	api := &fakeOrderAPI{order: &models.Order{ID: "o1"}}
	svc, carts := newTestOrderService(api, &fakeSessions{})
	carts.Add(ctx, "c1", models.Product{ID: "p1", Name: "Wax", Price: 12})

	input := codInput
	input.PaymentMethod = models.PaymentPayPal
	_, err := svc.Checkout(ctx, "c1", input)
	var payErr *PaymentError
	if !errors.As(err, &payErr) {
		t.Fatalf("expected PaymentError without a capture id, got %v", err)
	}

	// The cart survives the failed attempt.
	got, _ := carts.Get(ctx, "c1")
	if len(got.Entries) != 1 {
		t.Fatalf("failed checkout must keep the cart, got %+v", got.Entries)
	}

	input.PayPalCaptureID = "CAP-123"
	if _, err := svc.Checkout(ctx, "c1", input); err != nil {
		t.Fatalf("checkout with capture id: %v", err)
	}
	if api.lastReq.PayPalCaptureID != "CAP-123" {
		t.Fatalf("capture id not forwarded: %+v", api.lastReq)
	}
}

func TestCheckoutClearsCartOnlyOnSuccess(t *testing.T) {
	ctx := context.Background()
	api := &fakeOrderAPI{createErr: &backend.APIError{Status: 402, Message: "capture rejected"}}
	svc, carts := newTestOrderService(api, &fakeSessions{})
	carts.Add(ctx, "c1", models.Product{ID: "p1", Name: "Wax", Price: 12})
	carts.Add(ctx, "c1", models.Product{ID: "p1", Name: "Wax", Price: 12})

	input := codInput
	input.PaymentMethod = models.PaymentPayPal
	input.PayPalCaptureID = "CAP-123"
	_, err := svc.Checkout(ctx, "c1", input)
	var payErr *PaymentError
	if !errors.As(err, &payErr) || payErr.Message != "capture rejected" {
		t.Fatalf("a 402 should surface as PaymentError, got %v", err)
	}
	got, _ := carts.Get(ctx, "c1")
	if len(got.Entries) != 1 || got.Entries[0].Quantity != 2 {
		t.Fatalf("cart must survive a rejected payment, got %+v", got.Entries)
	}

	api.createErr = nil
	api.order = &models.Order{ID: "o1"}
	order, err := svc.Checkout(ctx, "c1", input)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.ID != "o1" {
		t.Fatalf("unexpected order: %+v", order)
	}
	if api.lastReq.Total != 24 {
		t.Fatalf("order total = %v, want 24", api.lastReq.Total)
	}
	got, _ = carts.Get(ctx, "c1")
	if len(got.Entries) != 0 {
		t.Fatalf("cart should be cleared after a placed order, got %+v", got.Entries)
	}
}

func TestCheckoutGuestAndAuthenticated(t *testing.T) {
	ctx := context.Background()
	api := &fakeOrderAPI{order: &models.Order{ID: "o1"}}
	sessions := &fakeSessions{}
	svc, carts := newTestOrderService(api, sessions)
	carts.Add(ctx, "c1", models.Product{ID: "p1", Name: "Wax", Price: 12})

	if _, err := svc.Checkout(ctx, "c1", codInput); err != nil {
		t.Fatalf("guest checkout: %v", err)
	}
	if api.lastReq.UserID != nil || api.lastToken != "" {
		t.Fatalf("guest order must carry no identity, got %+v token %q", api.lastReq.UserID, api.lastToken)
	}

	carts.Add(ctx, "c1", models.Product{ID: "p1", Name: "Wax", Price: 12})
	sessions.sess = &models.Session{Token: "tok", User: models.User{ID: "u1", Role: models.RoleUser}}
	if _, err := svc.Checkout(ctx, "c1", codInput); err != nil {
		t.Fatalf("authenticated checkout: %v", err)
	}
	if api.lastReq.UserID == nil || *api.lastReq.UserID != "u1" || api.lastToken != "tok" {
		t.Fatalf("authenticated order must carry the user identity, got %+v token %q", api.lastReq.UserID, api.lastToken)
	}
}

func TestBackendRejectionLogsClientOut(t *testing.T) {
	ctx := context.Background()
	api := &fakeOrderAPI{historyErr: backend.ErrUnauthorized}
	sessions := &fakeSessions{sess: &models.Session{
		Token: "revoked",
		User:  models.User{ID: "u1", Role: models.RoleUser},
	}}
	svc, _ := newTestOrderService(api, sessions)

	if _, err := svc.MyOrders(ctx, "c1"); !errors.Is(err, backend.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	// The local session looked valid, but the backend revoked the token:
	// the cached session must go so the client is logged out, not stuck
	// retrying with the same credentials.
	if sessions.Current(ctx, "c1") != nil {
		t.Fatal("backend 401 must purge the cached session")
	}

	// Other failures leave the session alone.
	sessions.sess = &models.Session{Token: "tok", User: models.User{ID: "u1", Role: models.RoleUser}}
	api.historyErr = backend.ErrUnreachable
	if _, err := svc.MyOrders(ctx, "c1"); !errors.Is(err, backend.ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
	if sessions.Current(ctx, "c1") == nil {
		t.Fatal("a transport failure must not log the client out")
	}
}

func TestHistoryRequiresSession(t *testing.T) {
	ctx := context.Background()
	api := &fakeOrderAPI{order: &models.Order{ID: "o1"}}
	sessions := &fakeSessions{}
	svc, _ := newTestOrderService(api, sessions)

	if _, err := svc.MyOrders(ctx, "c1"); !errors.Is(err, backend.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	sessions.sess = &models.Session{Token: "tok", User: models.User{ID: "u1"}}
	orders, err := svc.MyOrders(ctx, "c1")
	if err != nil || len(orders) != 1 {
		t.Fatalf("my orders: %v %v", orders, err)
	}
	if api.lastToken != "tok" {
		t.Fatalf("history call must carry the token, got %q", api.lastToken)
	}
}
