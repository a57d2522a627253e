// File: barberbook/handlers/storefront.go
package handlers

import (
	"net/http"

	"barberbook/config"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// StorefrontConfigHandler hands the UI its externally supplied values.
func StorefrontConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"paypalClientId": config.AppConfig.PayPalClientID,
		"currency":       config.AppConfig.Currency,
	})
}

// HealthHandler serves the latest health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Backend {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
