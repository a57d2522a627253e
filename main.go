// File: barberbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberbook/backend"
	"barberbook/config"
	"barberbook/cron"
	"barberbook/handlers"
	"barberbook/middleware"
	"barberbook/routes"
	"barberbook/services/booking"
	"barberbook/services/cart"
	"barberbook/services/catalog"
	"barberbook/services/order"
	"barberbook/services/realtime"
	"barberbook/services/session"
	"barberbook/store"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	apiClient := backend.NewClient(logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.ClientSessionMiddleware())

	// Stores over the Redis clients.
	sessionStore := store.NewRedisKV(utils.GetSessionCacheClient())
	cartStore := store.NewRedisKV(utils.GetCartCacheClient())
	bookingStore := store.NewRedisKV(utils.GetBookingCacheClient())

	// services.
	sessionService := &session.DefaultSessionService{
		API:    apiClient,
		Store:  sessionStore,
		Logger: logger,
	}

	cartService := &cart.DefaultCartService{
		Store:  cartStore,
		Logger: logger,
	}

	catalogService := &catalog.DefaultCatalogService{
		API:    apiClient,
		Cache:  bookingStore,
		Logger: logger,
	}

	slotResolver := &booking.DefaultSlotResolver{
		API: apiClient,
		Now: time.Now,
	}
	flowService := &booking.DefaultFlowService{
		API:      apiClient,
		Resolver: slotResolver,
		Catalog:  catalogService,
		Sessions: sessionService,
		Store:    bookingStore,
		Logger:   logger,
	}

	orderService := &order.DefaultOrderService{
		API:      apiClient,
		Cart:     cartService,
		Sessions: sessionService,
		Logger:   logger,
	}

	channel := realtime.NewChannel(utils.GetEventsCacheClient(), logger)
	channel.EmitStatus(context.Background(), "connected")

	// handlers.
	authHandler := handlers.NewAuthHandler(sessionService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService, catalogService)
	bookingHandler := handlers.NewBookingHandler(flowService, apiClient, sessionService)
	orderHandler := handlers.NewOrderHandler(orderService, apiClient)
	realtimeHandler := handlers.NewRealtimeHandler(channel)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessionService,

		// Auth endpoints.
		LoginHandler:          authHandler.LoginHandler,
		RegisterHandler:       authHandler.RegisterHandler,
		LogoutHandler:         authHandler.LogoutHandler,
		MeHandler:             authHandler.MeHandler,
		UpdateProfileHandler:  authHandler.UpdateProfileHandler,
		UpdatePasswordHandler: authHandler.UpdatePasswordHandler,

		// Catalog endpoints.
		BarbersHandler:           catalogHandler.BarbersHandler,
		BarberByIDHandler:        catalogHandler.BarberByIDHandler,
		ServicesHandler:          catalogHandler.ServicesHandler,
		ServiceByIDHandler:       catalogHandler.ServiceByIDHandler,
		ProductCategoriesHandler: catalogHandler.ProductCategoriesHandler,
		ProductShowcaseHandler:   catalogHandler.ProductShowcaseHandler,
		ProductByIDHandler:       catalogHandler.ProductByIDHandler,

		// Cart endpoints.
		GetCartHandler:     cartHandler.GetCartHandler,
		AddItemHandler:     cartHandler.AddItemHandler,
		SetQuantityHandler: cartHandler.SetQuantityHandler,
		RemoveItemHandler:  cartHandler.RemoveItemHandler,
		ClearCartHandler:   cartHandler.ClearCartHandler,

		// Booking endpoints.
		GetDraftHandler:      bookingHandler.GetDraftHandler,
		UpdateDraftHandler:   bookingHandler.UpdateDraftHandler,
		SetContactHandler:    bookingHandler.SetContactHandler,
		AcceptPolicyHandler:  bookingHandler.AcceptPolicyHandler,
		GetSlotsHandler:      bookingHandler.GetSlotsHandler,
		SubmitHandler:        bookingHandler.SubmitHandler,
		ConfirmHandler:       bookingHandler.ConfirmHandler,
		MyBookingsHandler:    bookingHandler.MyBookingsHandler,
		CancelBookingHandler: bookingHandler.CancelBookingHandler,

		// Order and contact endpoints.
		CheckoutHandler:  orderHandler.CheckoutHandler,
		OrderByIDHandler: orderHandler.OrderByIDHandler,
		MyOrdersHandler:  orderHandler.MyOrdersHandler,
		ContactHandler:   orderHandler.ContactHandler,

		// Realtime and storefront endpoints.
		EventsHandler:           realtimeHandler.EventsHandler,
		StorefrontConfigHandler: handlers.StorefrontConfigHandler,
		HealthHandler:           handlers.HealthHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background draft revalidation and health monitoring.
	cron.InitDraftWorker(flowService, logger)
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetSessionCacheClient(),
		utils.GetCartCacheClient(),
		utils.GetBookingCacheClient(),
		utils.GetEventsCacheClient(),
	}, apiClient.Health)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	channel.EmitStatus(context.Background(), "disconnected")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
