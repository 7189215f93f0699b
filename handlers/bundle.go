package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// Site availability endpoints.
	ProvisionSiteHandler      gin.HandlerFunc
	GetAvailabilityHandler    gin.HandlerFunc
	UpdateAvailabilityHandler gin.HandlerFunc
	GetAvailableSlotsHandler  gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler    gin.HandlerFunc
	ConfirmBookingHandler   gin.HandlerFunc
	CancelBookingHandler    gin.HandlerFunc
	GetBookingHandler       gin.HandlerFunc
	GetBookingByCodeHandler gin.HandlerFunc
	ListBookingsHandler     gin.HandlerFunc
}
