// File: barberbook/services/order/order.go
package order

import (
	"context"
	"errors"
	"fmt"

	"barberbook/backend"
	"barberbook/config"
	"barberbook/models"
	"barberbook/services/cart"
	"barberbook/services/session"

	"go.uber.org/zap"
)

// PaymentError is a payment-provider failure or cancellation. It is
// surfaced distinctly from generic errors and never clears the cart.
type PaymentError struct {
	Message string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("paymentError: %s", e.Message)
}

// OrderAPI is the slice of the backend client the order service needs.
type OrderAPI interface {
	CreateOrder(ctx context.Context, token string, req models.OrderRequest) (*models.Order, error)
	OrderByID(ctx context.Context, token, orderID string) (*models.Order, error)
	MyOrders(ctx context.Context, token string) ([]models.Order, error)
}

// CheckoutInput is what the checkout page submits.
type CheckoutInput struct {
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
	PayPalCaptureID string `json:"paypalCaptureId"`
	ShippingName    string `json:"shippingName" binding:"required"`
	ShippingAddress string `json:"shippingAddress" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone"`
}

// Service handles checkout and order history.
type Service interface {
	Checkout(ctx context.Context, clientID string, input CheckoutInput) (*models.Order, error)
	OrderByID(ctx context.Context, clientID, orderID string) (*models.Order, error)
	MyOrders(ctx context.Context, clientID string) ([]models.Order, error)
}

// DefaultOrderService implements Service.
type DefaultOrderService struct {
	API      OrderAPI
	Cart     cart.Service
	Sessions session.Service
	Logger   *zap.Logger
}

// Checkout builds an order from the current cart and places it with the
// backend. The cart is cleared only after the backend accepts the order.
func (s *DefaultOrderService) Checkout(ctx context.Context, clientID string, input CheckoutInput) (*models.Order, error) {
	currentCart, err := s.Cart.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(currentCart.Entries) == 0 {
		return nil, errors.New("cart is empty")
	}

	switch input.PaymentMethod {
	case models.PaymentPayPal:
		if input.PayPalCaptureID == "" {
			return nil, &PaymentError{Message: "payment was not completed"}
		}
	case models.PaymentCashOnDelivery:
		// Nothing to verify up front.
	default:
		return nil, fmt.Errorf("unsupported payment method %q", input.PaymentMethod)
	}

	items := make([]models.OrderItem, 0, len(currentCart.Entries))
	for _, e := range currentCart.Entries {
		items = append(items, models.OrderItem{
			ProductID: e.Product.ID,
			Name:      e.Product.Name,
			Price:     e.Product.Price,
			Quantity:  e.Quantity,
		})
	}

	var token string
	var userID *string
	if sess := s.Sessions.Current(ctx, clientID); sess != nil {
		token = sess.Token
		id := sess.User.ID
		userID = &id
	}

	order, err := s.API.CreateOrder(ctx, token, models.OrderRequest{
		Items:           items,
		Total:           currentCart.TotalCost(),
		Currency:        config.AppConfig.Currency,
		PaymentMethod:   input.PaymentMethod,
		PayPalCaptureID: input.PayPalCaptureID,
		UserID:          userID,
		ShippingName:    input.ShippingName,
		ShippingAddress: input.ShippingAddress,
		Email:           input.Email,
		Phone:           input.Phone,
	})
	if err != nil {
		session.PurgeOnAuthError(ctx, s.Sessions, clientID, err)
		// A rejected capture is a payment failure, not a generic error;
		// either way the cart stays intact.
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 402 {
			return nil, &PaymentError{Message: apiErr.Message}
		}
		return nil, err
	}

	if err := s.Cart.Clear(ctx, clientID); err != nil {
		s.Logger.Warn("failed to clear cart after checkout",
			zap.String("orderId", order.ID), zap.Error(err))
	}
	s.Logger.Info("order placed",
		zap.String("orderId", order.ID), zap.String("paymentMethod", input.PaymentMethod))
	return order, nil
}

// OrderByID fetches one order for the authenticated customer.
func (s *DefaultOrderService) OrderByID(ctx context.Context, clientID, orderID string) (*models.Order, error) {
	sess := s.Sessions.Current(ctx, clientID)
	if sess == nil {
		return nil, backend.ErrUnauthorized
	}
	order, err := s.API.OrderByID(ctx, sess.Token, orderID)
	if err != nil {
		session.PurgeOnAuthError(ctx, s.Sessions, clientID, err)
		return nil, err
	}
	return order, nil
}

// MyOrders lists the authenticated customer's order history.
func (s *DefaultOrderService) MyOrders(ctx context.Context, clientID string) ([]models.Order, error) {
	sess := s.Sessions.Current(ctx, clientID)
	if sess == nil {
		return nil, backend.ErrUnauthorized
	}
	orders, err := s.API.MyOrders(ctx, sess.Token)
	if err != nil {
		session.PurgeOnAuthError(ctx, s.Sessions, clientID, err)
		return nil, err
	}
	return orders, nil
}
