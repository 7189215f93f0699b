package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookery/models"
	"bookery/services"
)

// AvailabilityHandler exposes the availability configuration and slot
// endpoints.
type AvailabilityHandler struct {
	Service services.AvailabilityService
}

func NewAvailabilityHandler(svc services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// ProvisionSiteHandler creates the initial availability config for a site.
func (h *AvailabilityHandler) ProvisionSiteHandler(c *gin.Context) {
	var input struct {
		SiteID       string `json:"siteId" binding:"required"`
		BusinessName string `json:"businessName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cfg, err := h.Service.ProvisionSite(input.SiteID, input.BusinessName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cfg)
}

// GetAvailabilityHandler returns the availability config for a site.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	cfg, err := h.Service.GetConfig(c.Param("siteId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateAvailabilityHandler merges a partial update into a site's config.
func (h *AvailabilityHandler) UpdateAvailabilityHandler(c *gin.Context) {
	var upd models.AvailabilityUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cfg, err := h.Service.UpdateConfig(c.Param("siteId"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// GetAvailableSlotsHandler returns the bookable slots for a site on a date.
func (h *AvailabilityHandler) GetAvailableSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date", "details": "date must be YYYY-MM-DD"})
		return
	}

	slots := h.Service.GetAvailableSlots(c.Param("siteId"), date)
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}
