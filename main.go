// File: bookery/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"bookery/config"
	"bookery/handlers"
	"bookery/middleware"
	"bookery/routes"
	"bookery/services"
	"bookery/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// The single in-memory store behind both services.
	store := services.NewStore(config.AppConfig.MaxBookings)

	availabilityService := &services.DefaultAvailabilityService{Store: store}
	bookingService := &services.DefaultBookingService{Store: store}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProvisionSiteHandler:      availabilityHandler.ProvisionSiteHandler,
		GetAvailabilityHandler:    availabilityHandler.GetAvailabilityHandler,
		UpdateAvailabilityHandler: availabilityHandler.UpdateAvailabilityHandler,
		GetAvailableSlotsHandler:  availabilityHandler.GetAvailableSlotsHandler,

		CreateBookingHandler:    bookingHandler.CreateBookingHandler,
		ConfirmBookingHandler:   bookingHandler.ConfirmBookingHandler,
		CancelBookingHandler:    bookingHandler.CancelBookingHandler,
		GetBookingHandler:       bookingHandler.GetBookingHandler,
		GetBookingByCodeHandler: bookingHandler.GetBookingByCodeHandler,
		ListBookingsHandler:     bookingHandler.ListBookingsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
