package catalog

import (
	"context"
	"errors"
	"testing"

	"barberbook/models"
	"barberbook/store"

	"go.uber.org/zap"
)

type fakeCatalogAPI struct {
	services     []models.Service
	servicesErr  error
	serviceCalls int
	showcase     []models.CategoryShowcase
	showcaseErr  error
}

func (f *fakeCatalogAPI) Barbers(_ context.Context) ([]models.Barber, error) { return nil, nil }
func (f *fakeCatalogAPI) BarberByID(_ context.Context, _ string) (*models.Barber, error) {
	return nil, nil
}
func (f *fakeCatalogAPI) Services(_ context.Context) ([]models.Service, error) {
	f.serviceCalls++
	return f.services, f.servicesErr
}
func (f *fakeCatalogAPI) ServiceByID(_ context.Context, _ string) (*models.Service, error) {
	return nil, nil
}
func (f *fakeCatalogAPI) ProductCategories(_ context.Context) ([]models.ProductCategory, error) {
	return nil, nil
}
func (f *fakeCatalogAPI) ProductShowcase(_ context.Context) ([]models.CategoryShowcase, error) {
	return f.showcase, f.showcaseErr
}
func (f *fakeCatalogAPI) ProductByID(_ context.Context, _ string) (*models.Product, error) {
	return nil, nil
}

func newTestCatalog(api *fakeCatalogAPI) *DefaultCatalogService {
	return &DefaultCatalogService{API: api, Cache: store.NewMemoryKV(), Logger: zap.NewNop()}
}

func TestServicesAreCached(t *testing.T) {
	ctx := context.Background()
	api := &fakeCatalogAPI{services: []models.Service{{ID: "svc-1", Name: "Classic Haircut", Price: 25}}}
	svc := newTestCatalog(api)

	for i := 0; i < 3; i++ {
		services, err := svc.Services(ctx)
		if err != nil {
			t.Fatalf("services: %v", err)
		}
		if len(services) != 1 || services[0].ID != "svc-1" {
			t.Fatalf("unexpected services: %v", services)
		}
	}
	if api.serviceCalls != 1 {
		t.Fatalf("expected one backend call behind the cache, got %d", api.serviceCalls)
	}
}

func TestServiceNameResolvesDisplayName(t *testing.T) {
	ctx := context.Background()
	api := &fakeCatalogAPI{services: []models.Service{
		{ID: "svc-1", Name: "Classic Haircut"},
		{ID: "svc-2", Name: "Hot Towel Shave"},
	}}
	svc := newTestCatalog(api)

	name, err := svc.ServiceName(ctx, "svc-2")
	if err != nil {
		t.Fatalf("service name: %v", err)
	}
	if name != "Hot Towel Shave" {
		t.Fatalf("name = %q, want Hot Towel Shave", name)
	}

	if _, err := svc.ServiceName(ctx, "svc-9"); err == nil {
		t.Fatal("expected an error for an unknown service id")
	}
}

func TestServicesErrorIsNotCached(t *testing.T) {
	ctx := context.Background()
	api := &fakeCatalogAPI{servicesErr: errors.New("down")}
	svc := newTestCatalog(api)

	if _, err := svc.Services(ctx); err == nil {
		t.Fatal("expected the backend error")
	}

	api.servicesErr = nil
	api.services = []models.Service{{ID: "svc-1", Name: "Classic Haircut"}}
	services, err := svc.Services(ctx)
	if err != nil || len(services) != 1 {
		t.Fatalf("recovery after failure: %v %v", services, err)
	}
}
