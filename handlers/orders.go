// File: barberbook/handlers/orders.go
package handlers

import (
	"net/http"

	"barberbook/backend"
	"barberbook/middleware"
	"barberbook/models"
	"barberbook/services/order"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes checkout, order history and the contact form.
type OrderHandler struct {
	Orders order.Service
	API    *backend.Client
}

func NewOrderHandler(orders order.Service, api *backend.Client) *OrderHandler {
	return &OrderHandler{Orders: orders, API: api}
}

// CheckoutHandler places an order from the current cart.
func (h *OrderHandler) CheckoutHandler(c *gin.Context) {
	var input order.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	placed, err := h.Orders.Checkout(c.Request.Context(), middleware.ClientID(c), input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": placed})
}

// OrderByIDHandler fetches one order.
func (h *OrderHandler) OrderByIDHandler(c *gin.Context) {
	placed, err := h.Orders.OrderByID(c.Request.Context(), middleware.ClientID(c), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": placed})
}

// MyOrdersHandler lists the customer's order history.
func (h *OrderHandler) MyOrdersHandler(c *gin.Context) {
	orders, err := h.Orders.MyOrders(c.Request.Context(), middleware.ClientID(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ContactHandler forwards a contact-form message to the backend.
func (h *OrderHandler) ContactHandler(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.API.CreateContact(c.Request.Context(), msg); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "thanks, we'll be in touch"})
}
