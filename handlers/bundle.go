// File: barberbook/handlers/bundle.go
package handlers

import (
	"barberbook/services/session"

	"github.com/gin-gonic/gin"
)

// HandlerBundle collects every endpoint handler plus the services route
// registration needs for its guards.
type HandlerBundle struct {
	Sessions session.Service

	// Auth endpoints.
	LoginHandler          gin.HandlerFunc
	RegisterHandler       gin.HandlerFunc
	LogoutHandler         gin.HandlerFunc
	MeHandler             gin.HandlerFunc
	UpdateProfileHandler  gin.HandlerFunc
	UpdatePasswordHandler gin.HandlerFunc

	// Catalog endpoints.
	BarbersHandler           gin.HandlerFunc
	BarberByIDHandler        gin.HandlerFunc
	ServicesHandler          gin.HandlerFunc
	ServiceByIDHandler       gin.HandlerFunc
	ProductCategoriesHandler gin.HandlerFunc
	ProductShowcaseHandler   gin.HandlerFunc
	ProductByIDHandler       gin.HandlerFunc

	// Cart endpoints.
	GetCartHandler     gin.HandlerFunc
	AddItemHandler     gin.HandlerFunc
	SetQuantityHandler gin.HandlerFunc
	RemoveItemHandler  gin.HandlerFunc
	ClearCartHandler   gin.HandlerFunc

	// Booking endpoints.
	GetDraftHandler      gin.HandlerFunc
	UpdateDraftHandler   gin.HandlerFunc
	SetContactHandler    gin.HandlerFunc
	AcceptPolicyHandler  gin.HandlerFunc
	GetSlotsHandler      gin.HandlerFunc
	SubmitHandler        gin.HandlerFunc
	ConfirmHandler       gin.HandlerFunc
	MyBookingsHandler    gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc

	// Order and contact endpoints.
	CheckoutHandler  gin.HandlerFunc
	OrderByIDHandler gin.HandlerFunc
	MyOrdersHandler  gin.HandlerFunc
	ContactHandler   gin.HandlerFunc

	// Realtime and storefront endpoints.
	EventsHandler           gin.HandlerFunc
	StorefrontConfigHandler gin.HandlerFunc
	HealthHandler           gin.HandlerFunc
}
