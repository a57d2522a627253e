package routes

import (
	"net/http"
	"time"

	"barberbook/handlers"
	"barberbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers authentication endpoints. Login and register
// are guest-only; profile endpoints require an authenticated customer.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		guest := api.Group("")
		guest.Use(middleware.GuestOnlyMiddleware(hb.Sessions))
		guest.POST("/login", hb.LoginHandler)
		guest.POST("/register", hb.RegisterHandler)

		api.POST("/logout", hb.LogoutHandler)
		api.GET("/me", hb.MeHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireUserMiddleware(hb.Sessions))
		protected.PUT("/update-profile", hb.UpdateProfileHandler)
		protected.PATCH("/update-password", hb.UpdatePasswordHandler)
	}
}

// RegisterCatalogRoutes registers public browse endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/barbers", hb.BarbersHandler)
		api.GET("/barbers/:id", hb.BarberByIDHandler)
		api.GET("/services", hb.ServicesHandler)
		api.GET("/services/:id", hb.ServiceByIDHandler)
		api.GET("/products/categories", hb.ProductCategoriesHandler)
		api.GET("/products/showcase-by-category", hb.ProductShowcaseHandler)
		api.GET("/products/:id", hb.ProductByIDHandler)
	}
}

// RegisterCartRoutes registers the shopping cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.GET("", hb.GetCartHandler)
		api.POST("/items", hb.AddItemHandler)
		api.PUT("/items/:productId", hb.SetQuantityHandler)
		api.DELETE("/items/:productId", hb.RemoveItemHandler)
		api.DELETE("", hb.ClearCartHandler)
	}
}

// RegisterBookingRoutes registers the booking flow. The form itself is open
// to guests; history and cancellation require authentication.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.GET("/draft", hb.GetDraftHandler)
		api.PUT("/draft", hb.UpdateDraftHandler)
		api.PUT("/draft/contact", hb.SetContactHandler)
		api.PUT("/draft/policy", hb.AcceptPolicyHandler)
		api.GET("/slots", hb.GetSlotsHandler)
		api.POST("/submit", hb.SubmitHandler)
		api.POST("/confirm", hb.ConfirmHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireUserMiddleware(hb.Sessions))
		protected.GET("/my-bookings", hb.MyBookingsHandler)
		protected.PUT("/:id/cancel", hb.CancelBookingHandler)
	}
}

// RegisterOrderRoutes registers checkout, order history and contact.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/orders")
	{
		api.POST("", hb.CheckoutHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireUserMiddleware(hb.Sessions))
		protected.GET("/user/my-orders", hb.MyOrdersHandler)
		protected.GET("/:id", hb.OrderByIDHandler)
	}
	r.POST("/api/contacts", hb.ContactHandler)
}

// RegisterRealtimeRoutes registers the SSE event bridge.
func RegisterRealtimeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/realtime/events", hb.EventsHandler)
}

// RegisterStorefrontRoutes registers UI configuration and health.
func RegisterStorefrontRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/config", hb.StorefrontConfigHandler)
	if hb.HealthHandler != nil {
		r.GET("/health", hb.HealthHandler)
	} else {
		r.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterRealtimeRoutes(r, hb)
	RegisterStorefrontRoutes(r, hb)
}
