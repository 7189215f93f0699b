package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookery/models"
	"bookery/services"
)

// BookingHandler exposes the booking lifecycle and query endpoints.
type BookingHandler struct {
	Service services.BookingService
}

func NewBookingHandler(svc services.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler creates a new booking against a currently available
// slot.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Service.CreateBooking(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// ConfirmBookingHandler moves a pending booking to confirmed.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	booking, err := h.Service.ConfirmBooking(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBookingHandler cancels a pending or confirmed booking.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	booking, err := h.Service.CancelBooking(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GetBookingHandler looks a booking up by id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	booking, err := h.Service.GetBooking(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GetBookingByCodeHandler looks a booking up by confirmation code.
func (h *BookingHandler) GetBookingByCodeHandler(c *gin.Context) {
	booking, err := h.Service.GetBookingByConfirmationCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ListBookingsHandler returns bookings filtered by optional siteId and date
// query parameters, ordered by (date, startTime).
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings := h.Service.ListBookings(c.Query("siteId"), c.Query("date"))
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}
