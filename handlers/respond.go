// File: barberbook/handlers/respond.go
package handlers

import (
	"errors"
	"net/http"

	"barberbook/backend"
	"barberbook/services/booking"
	"barberbook/services/order"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// RespondServiceError maps service-layer failures onto the storefront's
// error taxonomy: transport failures, expired sessions, validation
// failures, backend business failures and payment failures each get their
// own presentation.
func RespondServiceError(c *gin.Context, err error) {
	var flowErr *booking.FlowError
	if errors.As(err, &flowErr) {
		status := http.StatusBadRequest
		if flowErr.Code == "slotUnavailable" {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": flowErr.Message, "code": flowErr.Code})
		return
	}

	var payErr *order.PaymentError
	if errors.As(err, &payErr) {
		c.JSON(http.StatusPaymentRequired, gin.H{"error": payErr.Message, "code": "paymentError"})
		return
	}

	if errors.Is(err, backend.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    "Your session has expired. Please log in again.",
			"redirect": "/login",
		})
		return
	}

	if errors.Is(err, backend.ErrUnreachable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Cannot reach server. Please try again later.",
		})
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
}
