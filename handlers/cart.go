// File: barberbook/handlers/cart.go
package handlers

import (
	"net/http"

	"barberbook/middleware"
	"barberbook/models"
	"barberbook/services/cart"
	"barberbook/services/catalog"

	"github.com/gin-gonic/gin"
)

// CartHandler exposes the shopping cart endpoints.
type CartHandler struct {
	Cart    cart.Service
	Catalog catalog.Service
}

func NewCartHandler(cartSvc cart.Service, catalogSvc catalog.Service) *CartHandler {
	return &CartHandler{Cart: cartSvc, Catalog: catalogSvc}
}

func cartResponse(c *gin.Context, theCart *models.Cart) {
	c.JSON(http.StatusOK, gin.H{
		"cart":       theCart,
		"totalItems": theCart.TotalItems(),
		"totalCost":  theCart.TotalCost(),
	})
}

// GetCartHandler returns the cart with its derived totals.
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	theCart, err := h.Cart.Get(c.Request.Context(), middleware.ClientID(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	cartResponse(c, theCart)
}

// AddItemHandler adds one unit of a product, resolving it through the
// catalog so the stored entry carries the current price.
func (h *CartHandler) AddItemHandler(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	ctx := c.Request.Context()
	product, err := h.Catalog.ProductByID(ctx, input.ProductID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	theCart, err := h.Cart.Add(ctx, middleware.ClientID(c), *product)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	cartResponse(c, theCart)
}

// SetQuantityHandler replaces a line's quantity.
func (h *CartHandler) SetQuantityHandler(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	theCart, err := h.Cart.SetQuantity(c.Request.Context(), middleware.ClientID(c), c.Param("productId"), input.Quantity)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	cartResponse(c, theCart)
}

// RemoveItemHandler drops a product line.
func (h *CartHandler) RemoveItemHandler(c *gin.Context) {
	theCart, err := h.Cart.Remove(c.Request.Context(), middleware.ClientID(c), c.Param("productId"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	cartResponse(c, theCart)
}

// ClearCartHandler empties the cart.
func (h *CartHandler) ClearCartHandler(c *gin.Context) {
	if err := h.Cart.Clear(c.Request.Context(), middleware.ClientID(c)); err != nil {
		RespondServiceError(c, err)
		return
	}
	cartResponse(c, &models.Cart{})
}
