// File: barberbook/services/cart/cart.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"barberbook/models"
	"barberbook/store"
	"barberbook/utils"

	"go.uber.org/zap"
)

// DefaultCartService implements Service over a KV store.
type DefaultCartService struct {
	Store  store.KV
	Logger *zap.Logger
}

func cartKey(clientID string) string {
	return utils.CartKeyPrefix + clientID
}

func (s *DefaultCartService) load(ctx context.Context, clientID string) (*models.Cart, error) {
	data, err := s.Store.Get(ctx, cartKey(clientID))
	if errors.Is(err, store.ErrNotFound) {
		return &models.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		// A corrupt cart is unrecoverable; start fresh.
		s.Logger.Warn("discarding malformed cart", zap.String("clientID", clientID))
		_ = s.Store.Del(ctx, cartKey(clientID))
		return &models.Cart{}, nil
	}
	return &cart, nil
}

func (s *DefaultCartService) save(ctx context.Context, clientID string, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.Store.Set(ctx, cartKey(clientID), string(data), utils.CartTTL); err != nil {
		return fmt.Errorf("failed to store cart: %w", err)
	}
	return nil
}

// Get returns the current cart, empty when nothing is stored.
func (s *DefaultCartService) Get(ctx context.Context, clientID string) (*models.Cart, error) {
	return s.load(ctx, clientID)
}

// Add increments the quantity when the product is already present,
// otherwise inserts it at quantity 1.
func (s *DefaultCartService) Add(ctx context.Context, clientID string, product models.Product) (*models.Cart, error) {
	cart, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range cart.Entries {
		if cart.Entries[i].Product.ID == product.ID {
			cart.Entries[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart.Entries = append(cart.Entries, models.CartEntry{Product: product, Quantity: 1})
	}
	if err := s.save(ctx, clientID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove drops the product line entirely.
func (s *DefaultCartService) Remove(ctx context.Context, clientID, productID string) (*models.Cart, error) {
	cart, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	entries := cart.Entries[:0]
	for _, e := range cart.Entries {
		if e.Product.ID != productID {
			entries = append(entries, e)
		}
	}
	cart.Entries = entries
	if err := s.save(ctx, clientID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity replaces the quantity for a product line. Quantities below 1
// leave the cart unchanged.
func (s *DefaultCartService) SetQuantity(ctx context.Context, clientID, productID string, qty int) (*models.Cart, error) {
	cart, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if qty < 1 {
		return cart, nil
	}
	for i := range cart.Entries {
		if cart.Entries[i].Product.ID == productID {
			cart.Entries[i].Quantity = qty
			if err := s.save(ctx, clientID, cart); err != nil {
				return nil, err
			}
			break
		}
	}
	return cart, nil
}

// Clear empties the cart.
func (s *DefaultCartService) Clear(ctx context.Context, clientID string) error {
	return s.Store.Del(ctx, cartKey(clientID))
}
