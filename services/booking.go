package services

import (
	"regexp"
	"sort"
	"time"

	"bookery/models"
	"bookery/utils"
)

// emailPattern accepts the basic local@domain.tld shape; anything stricter
// belongs to a verification flow, not booking intake.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// BookingService defines the booking lifecycle and query operations.
type BookingService interface {
	CreateBooking(req models.BookingRequest) (*models.Booking, error)
	ConfirmBooking(id string) (*models.Booking, error)
	CancelBooking(id string) (*models.Booking, error)
	GetBooking(id string) (*models.Booking, error)
	GetBookingByConfirmationCode(code string) (*models.Booking, error)
	ListBookings(siteID, date string) []*models.Booking
}

// DefaultBookingService is the default implementation backed by the shared
// in-memory store.
type DefaultBookingService struct {
	Store *Store
}

// CreateBooking validates the request, re-derives the slot list for the
// requested date, and commits the booking only if the requested start time
// is still an available slot. The store's write lock is held across the
// whole recompute-then-commit sequence, so two concurrent requests for the
// same slot cannot both succeed.
func (s *DefaultBookingService) CreateBooking(req models.BookingRequest) (*models.Booking, error) {
	st := s.Store
	st.mu.Lock()
	defer st.mu.Unlock()

	// The global ceiling is checked before any other validation.
	if len(st.bookings) >= st.maxBookings {
		return nil, failf(ErrResourceExhausted, "booking capacity reached (%d)", st.maxBookings)
	}
	if !emailPattern.MatchString(req.CustomerEmail) {
		return nil, failf(ErrInvalidArgument, "invalid customer email %q", req.CustomerEmail)
	}
	cfg, ok := st.configs[req.SiteID]
	if !ok {
		return nil, failf(ErrNotFound, "no availability config for site %q", req.SiteID)
	}

	slots := generateSlots(cfg, req.Date, st.activeBookingsLocked(req.SiteID, req.Date))
	var chosen *models.AvailableSlot
	for i := range slots {
		if slots[i].StartTime == req.StartTime && slots[i].Available {
			chosen = &slots[i]
			break
		}
	}
	if chosen == nil {
		return nil, failf(ErrConflict, "slot %s on %s is not available", req.StartTime, req.Date)
	}

	code, err := utils.NewConfirmationCode()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	booking := &models.Booking{
		ID:               utils.NewBookingID(),
		SiteID:           req.SiteID,
		BusinessName:     cfg.BusinessName,
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		CustomerPhone:    req.CustomerPhone,
		Service:          req.Service,
		Notes:            req.Notes,
		Date:             req.Date,
		StartTime:        chosen.StartTime,
		EndTime:          chosen.EndTime,
		Status:           models.BookingPending,
		ConfirmationCode: code,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	st.bookings[booking.ID] = booking

	cp := *booking
	return &cp, nil
}

// ConfirmBooking moves a pending booking to confirmed.
func (s *DefaultBookingService) ConfirmBooking(id string) (*models.Booking, error) {
	st := s.Store
	st.mu.Lock()
	defer st.mu.Unlock()

	booking, ok := st.bookings[id]
	if !ok {
		return nil, failf(ErrNotFound, "booking %q not found", id)
	}
	if booking.Status != models.BookingPending {
		return nil, failf(ErrFailedPrecondition, "booking %q is %s, only pending bookings can be confirmed", id, booking.Status)
	}
	booking.Status = models.BookingConfirmed
	booking.UpdatedAt = time.Now().UTC()

	cp := *booking
	return &cp, nil
}

// CancelBooking cancels a pending or confirmed booking. Canceled bookings
// immediately stop blocking slots.
func (s *DefaultBookingService) CancelBooking(id string) (*models.Booking, error) {
	st := s.Store
	st.mu.Lock()
	defer st.mu.Unlock()

	booking, ok := st.bookings[id]
	if !ok {
		return nil, failf(ErrNotFound, "booking %q not found", id)
	}
	if booking.Status == models.BookingCanceled {
		return nil, failf(ErrFailedPrecondition, "booking %q is already canceled", id)
	}
	booking.Status = models.BookingCanceled
	booking.UpdatedAt = time.Now().UTC()

	cp := *booking
	return &cp, nil
}

// GetBooking looks a booking up by its identifier.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	st := s.Store
	st.mu.RLock()
	defer st.mu.RUnlock()

	booking, ok := st.bookings[id]
	if !ok {
		return nil, failf(ErrNotFound, "booking %q not found", id)
	}
	cp := *booking
	return &cp, nil
}

// GetBookingByConfirmationCode looks a booking up by its confirmation code.
// The match is case-sensitive and exact.
func (s *DefaultBookingService) GetBookingByConfirmationCode(code string) (*models.Booking, error) {
	st := s.Store
	st.mu.RLock()
	defer st.mu.RUnlock()

	for _, booking := range st.bookings {
		if booking.ConfirmationCode == code {
			cp := *booking
			return &cp, nil
		}
	}
	return nil, failf(ErrNotFound, "no booking with confirmation code %q", code)
}

// ListBookings returns bookings matching the supplied filters, sorted
// ascending by (date, startTime). Empty filters match everything.
func (s *DefaultBookingService) ListBookings(siteID, date string) []*models.Booking {
	st := s.Store
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := []*models.Booking{}
	for _, booking := range st.bookings {
		if siteID != "" && booking.SiteID != siteID {
			continue
		}
		if date != "" && booking.Date != date {
			continue
		}
		cp := *booking
		out = append(out, &cp)
	}
	// ISO dates and zero-padded HH:MM sort correctly as strings.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}
