// File: barberbook/services/catalog/catalog.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"barberbook/models"
	"barberbook/store"
	"barberbook/utils"

	"go.uber.org/zap"
)

// cacheTTL keeps catalog reads fresh without hammering the backend.
const cacheTTL = 60 * time.Second

// API is the slice of the backend client the catalog needs.
type API interface {
	Barbers(ctx context.Context) ([]models.Barber, error)
	BarberByID(ctx context.Context, id string) (*models.Barber, error)
	Services(ctx context.Context) ([]models.Service, error)
	ServiceByID(ctx context.Context, id string) (*models.Service, error)
	ProductCategories(ctx context.Context) ([]models.ProductCategory, error)
	ProductShowcase(ctx context.Context) ([]models.CategoryShowcase, error)
	ProductByID(ctx context.Context, id string) (*models.Product, error)
}

// Service serves catalog reads with a short-lived cache in front of the
// backend.
type Service interface {
	Barbers(ctx context.Context) ([]models.Barber, error)
	BarberByID(ctx context.Context, id string) (*models.Barber, error)
	Services(ctx context.Context) ([]models.Service, error)
	ServiceByID(ctx context.Context, id string) (*models.Service, error)
	// ServiceName resolves a service id to its display name; the backend's
	// booking contract expects the name, not the id.
	ServiceName(ctx context.Context, id string) (string, error)
	ProductCategories(ctx context.Context) ([]models.ProductCategory, error)
	ProductShowcase(ctx context.Context) ([]models.CategoryShowcase, error)
	ProductByID(ctx context.Context, id string) (*models.Product, error)
}

// DefaultCatalogService implements Service.
type DefaultCatalogService struct {
	API    API
	Cache  store.KV
	Logger *zap.Logger
}

// cached runs fetch through the cache under key.
func cached[T any](ctx context.Context, s *DefaultCatalogService, key string, fetch func() (T, error)) (T, error) {
	var zero T
	if data, err := s.Cache.Get(ctx, key); err == nil {
		var value T
		if err := json.Unmarshal([]byte(data), &value); err == nil {
			return value, nil
		}
		_ = s.Cache.Del(ctx, key)
	}
	value, err := fetch()
	if err != nil {
		return zero, err
	}
	if data, err := json.Marshal(value); err == nil {
		if err := s.Cache.Set(ctx, key, string(data), cacheTTL); err != nil {
			s.Logger.Debug("catalog cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return value, nil
}

func (s *DefaultCatalogService) Barbers(ctx context.Context) ([]models.Barber, error) {
	return cached(ctx, s, "catalog:barbers", func() ([]models.Barber, error) {
		return s.API.Barbers(ctx)
	})
}

func (s *DefaultCatalogService) BarberByID(ctx context.Context, id string) (*models.Barber, error) {
	return s.API.BarberByID(ctx, id)
}

func (s *DefaultCatalogService) Services(ctx context.Context) ([]models.Service, error) {
	return cached(ctx, s, "catalog:services", func() ([]models.Service, error) {
		return s.API.Services(ctx)
	})
}

func (s *DefaultCatalogService) ServiceByID(ctx context.Context, id string) (*models.Service, error) {
	return s.API.ServiceByID(ctx, id)
}

func (s *DefaultCatalogService) ServiceName(ctx context.Context, id string) (string, error) {
	services, err := s.Services(ctx)
	if err != nil {
		return "", err
	}
	for _, svc := range services {
		if svc.ID == id {
			return svc.Name, nil
		}
	}
	return "", fmt.Errorf("unknown service %q", id)
}

func (s *DefaultCatalogService) ProductCategories(ctx context.Context) ([]models.ProductCategory, error) {
	return cached(ctx, s, "catalog:categories", func() ([]models.ProductCategory, error) {
		return s.API.ProductCategories(ctx)
	})
}

// ProductShowcase is the shop landing page payload; it gets one retry with
// backoff since a cold page without it is useless.
func (s *DefaultCatalogService) ProductShowcase(ctx context.Context) ([]models.CategoryShowcase, error) {
	return cached(ctx, s, "catalog:showcase", func() ([]models.CategoryShowcase, error) {
		var showcase []models.CategoryShowcase
		err := utils.Retry(ctx, 2, 500*time.Millisecond, func() error {
			var err error
			showcase, err = s.API.ProductShowcase(ctx)
			return err
		})
		return showcase, err
	})
}

func (s *DefaultCatalogService) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.API.ProductByID(ctx, id)
}
