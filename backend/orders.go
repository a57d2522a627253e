package backend

import (
	"context"
	"net/http"

	"barberbook/models"
)

// CreateOrder places an order. token may be empty for guest checkout.
func (c *Client) CreateOrder(ctx context.Context, token string, req models.OrderRequest) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", token, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// OrderByID fetches one order.
func (c *Client) OrderByID(ctx context.Context, token, orderID string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+orderID, token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// MyOrders lists the authenticated customer's order history.
func (c *Client) MyOrders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/user/my-orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateContact submits a contact-form message.
func (c *Client) CreateContact(ctx context.Context, msg models.ContactMessage) error {
	return c.do(ctx, http.MethodPost, "/contacts", "", msg, nil)
}
