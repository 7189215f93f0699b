package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bookery/handlers"
)

// RegisterSiteRoutes registers site provisioning and availability endpoints.
func RegisterSiteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sites")
	{
		api.POST("", hb.ProvisionSiteHandler)
		api.GET("/:siteId/availability", hb.GetAvailabilityHandler)
		api.PUT("/:siteId/availability", hb.UpdateAvailabilityHandler)
		api.GET("/:siteId/slots", hb.GetAvailableSlotsHandler)
	}
}

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/bookings")
	{
		booking.POST("", hb.CreateBookingHandler)
		booking.GET("", hb.ListBookingsHandler)
		booking.GET("/:id", hb.GetBookingHandler)
		booking.GET("/code/:code", hb.GetBookingByCodeHandler)
		booking.PUT("/:id/confirm", hb.ConfirmBookingHandler)
		booking.PUT("/:id/cancel", hb.CancelBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Bookery"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSiteRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
