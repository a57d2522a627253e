package cart

import (
	"context"

	"barberbook/models"
)

// Service maintains the shopping cart for each client session. Every
// mutation reserializes the full cart to the store.
type Service interface {
	Get(ctx context.Context, clientID string) (*models.Cart, error)
	Add(ctx context.Context, clientID string, product models.Product) (*models.Cart, error)
	Remove(ctx context.Context, clientID, productID string) (*models.Cart, error)
	SetQuantity(ctx context.Context, clientID, productID string, qty int) (*models.Cart, error)
	Clear(ctx context.Context, clientID string) error
}
