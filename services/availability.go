// services/availability.go
package services

import (
	"time"

	"bookery/models"
)

// AvailabilityService defines methods for managing per-site availability
// configuration and computing bookable slots.
type AvailabilityService interface {
	ProvisionSite(siteID, businessName string) (*models.AvailabilityConfig, error)
	GetConfig(siteID string) (*models.AvailabilityConfig, error)
	UpdateConfig(siteID string, upd models.AvailabilityUpdate) (*models.AvailabilityConfig, error)
	GetAvailableSlots(siteID, date string) []models.AvailableSlot
}

// DefaultAvailabilityService is a concrete implementation backed by the
// shared in-memory store.
type DefaultAvailabilityService struct {
	Store *Store
}

// defaultSchedule is the initial weekly schedule for a freshly provisioned
// site: weekdays 09:00-17:00, weekends closed.
func defaultSchedule() models.WeeklySchedule {
	business := []models.TimeWindow{{Start: "09:00", End: "17:00"}}
	return models.WeeklySchedule{
		Monday:    business,
		Tuesday:   business,
		Wednesday: business,
		Thursday:  business,
		Friday:    business,
	}
}

// ProvisionSite creates the initial availability config for a site. The
// record starts from engine defaults and is shaped by UpdateConfig afterwards.
func (s *DefaultAvailabilityService) ProvisionSite(siteID, businessName string) (*models.AvailabilityConfig, error) {
	if siteID == "" {
		return nil, failf(ErrInvalidArgument, "siteId is required")
	}
	if businessName == "" {
		return nil, failf(ErrInvalidArgument, "businessName is required")
	}

	st := s.Store
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, exists := st.configs[siteID]; exists {
		return nil, failf(ErrConflict, "site %q already has an availability config", siteID)
	}

	now := time.Now().UTC()
	cfg := &models.AvailabilityConfig{
		SiteID:       siteID,
		BusinessName: businessName,
		Timezone:     "America/New_York",
		SlotDuration: 60,
		BufferTime:   15,
		Schedule:     defaultSchedule(),
		BlockedDates: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	st.configs[siteID] = cfg
	return cfg.Clone(), nil
}

// GetConfig returns the availability config for a site.
func (s *DefaultAvailabilityService) GetConfig(siteID string) (*models.AvailabilityConfig, error) {
	st := s.Store
	st.mu.RLock()
	defer st.mu.RUnlock()

	cfg, ok := st.configs[siteID]
	if !ok {
		return nil, failf(ErrNotFound, "no availability config for site %q", siteID)
	}
	return cfg.Clone(), nil
}

// UpdateConfig merges a partial update into an existing config. Fields left
// nil on the update are preserved; the merged record must keep
// slotDuration >= 5 and bufferTime >= 0 or the whole update is rejected.
func (s *DefaultAvailabilityService) UpdateConfig(siteID string, upd models.AvailabilityUpdate) (*models.AvailabilityConfig, error) {
	st := s.Store
	st.mu.Lock()
	defer st.mu.Unlock()

	cfg, ok := st.configs[siteID]
	if !ok {
		return nil, failf(ErrNotFound, "no availability config for site %q", siteID)
	}

	duration := cfg.SlotDuration
	if upd.SlotDuration != nil {
		duration = *upd.SlotDuration
	}
	buffer := cfg.BufferTime
	if upd.BufferTime != nil {
		buffer = *upd.BufferTime
	}
	if duration < minSlotDuration {
		return nil, failf(ErrInvalidArgument, "slotDuration must be at least %d minutes, got %d", minSlotDuration, duration)
	}
	if buffer < 0 {
		return nil, failf(ErrInvalidArgument, "bufferTime must not be negative, got %d", buffer)
	}

	cfg.SlotDuration = duration
	cfg.BufferTime = buffer
	if upd.BusinessName != nil {
		cfg.BusinessName = *upd.BusinessName
	}
	if upd.Timezone != nil {
		cfg.Timezone = *upd.Timezone
	}
	if upd.Schedule != nil {
		cfg.Schedule = *upd.Schedule
	}
	if upd.BlockedDates != nil {
		cfg.BlockedDates = *upd.BlockedDates
	}
	cfg.UpdatedAt = time.Now().UTC()

	return cfg.Clone(), nil
}

// GetAvailableSlots computes the ordered bookable slots for a site on a
// date. An unconfigured site, a closed day, a blocked date, or an
// unparseable date all yield an empty list rather than an error.
func (s *DefaultAvailabilityService) GetAvailableSlots(siteID, date string) []models.AvailableSlot {
	st := s.Store
	st.mu.RLock()
	defer st.mu.RUnlock()

	cfg, ok := st.configs[siteID]
	if !ok {
		return []models.AvailableSlot{}
	}
	return generateSlots(cfg, date, st.activeBookingsLocked(siteID, date))
}
