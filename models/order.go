package models

import "time"

// Payment methods accepted at checkout.
const (
	PaymentPayPal         = "paypal"
	PaymentCashOnDelivery = "cod"
)

// OrderItem is one purchased product line.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// OrderRequest is the payload the backend expects for POST /orders.
type OrderRequest struct {
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	Currency      string      `json:"currency"`
	PaymentMethod string      `json:"paymentMethod"`
	// PayPalCaptureID references the capture completed by the payment
	// provider; empty for cash-on-delivery orders.
	PayPalCaptureID string  `json:"paypalCaptureId,omitempty"`
	UserID          *string `json:"userId"`
	ShippingName    string  `json:"shippingName"`
	ShippingAddress string  `json:"shippingAddress"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone,omitempty"`
}

// Order is a row in the customer's order history.
type Order struct {
	ID            string      `json:"id"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	Currency      string      `json:"currency"`
	PaymentMethod string      `json:"paymentMethod"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}
