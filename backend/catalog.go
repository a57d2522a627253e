package backend

import (
	"context"
	"net/http"

	"barberbook/models"
)

// Barbers lists all bookable staff.
func (c *Client) Barbers(ctx context.Context) ([]models.Barber, error) {
	var barbers []models.Barber
	if err := c.do(ctx, http.MethodGet, "/barbers", "", nil, &barbers); err != nil {
		return nil, err
	}
	return barbers, nil
}

// BarberByID fetches one barber.
func (c *Client) BarberByID(ctx context.Context, id string) (*models.Barber, error) {
	var barber models.Barber
	if err := c.do(ctx, http.MethodGet, "/barbers/"+id, "", nil, &barber); err != nil {
		return nil, err
	}
	return &barber, nil
}

// Services lists all bookable treatments.
func (c *Client) Services(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := c.do(ctx, http.MethodGet, "/services", "", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// ServiceByID fetches one service.
func (c *Client) ServiceByID(ctx context.Context, id string) (*models.Service, error) {
	var service models.Service
	if err := c.do(ctx, http.MethodGet, "/services/"+id, "", nil, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// ProductCategories lists the shop categories.
func (c *Client) ProductCategories(ctx context.Context) ([]models.ProductCategory, error) {
	var categories []models.ProductCategory
	if err := c.do(ctx, http.MethodGet, "/products/categories", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ProductShowcase returns featured products grouped by category.
func (c *Client) ProductShowcase(ctx context.Context) ([]models.CategoryShowcase, error) {
	var showcase []models.CategoryShowcase
	if err := c.do(ctx, http.MethodGet, "/products/showcase-by-category", "", nil, &showcase); err != nil {
		return nil, err
	}
	return showcase, nil
}

// ProductByID fetches one product.
func (c *Client) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id, "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
