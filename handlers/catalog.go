// File: barberbook/handlers/catalog.go
package handlers

import (
	"net/http"

	"barberbook/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes read-only catalog endpoints.
type CatalogHandler struct {
	Catalog catalog.Service
}

func NewCatalogHandler(catalogSvc catalog.Service) *CatalogHandler {
	return &CatalogHandler{Catalog: catalogSvc}
}

func (h *CatalogHandler) BarbersHandler(c *gin.Context) {
	barbers, err := h.Catalog.Barbers(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"barbers": barbers})
}

func (h *CatalogHandler) BarberByIDHandler(c *gin.Context) {
	barber, err := h.Catalog.BarberByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"barber": barber})
}

func (h *CatalogHandler) ServicesHandler(c *gin.Context) {
	services, err := h.Catalog.Services(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *CatalogHandler) ServiceByIDHandler(c *gin.Context) {
	service, err := h.Catalog.ServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": service})
}

func (h *CatalogHandler) ProductCategoriesHandler(c *gin.Context) {
	categories, err := h.Catalog.ProductCategories(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CatalogHandler) ProductShowcaseHandler(c *gin.Context) {
	showcase, err := h.Catalog.ProductShowcase(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"showcase": showcase})
}

func (h *CatalogHandler) ProductByIDHandler(c *gin.Context) {
	product, err := h.Catalog.ProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}
