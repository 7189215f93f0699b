package services

import (
	"sync"

	"bookery/models"
)

// Store owns every availability config and booking for the engine. All state
// lives behind a single RWMutex; mutating operations hold the write lock for
// their whole check-then-commit sequence, which is what keeps concurrent
// CreateBooking calls from double-booking a slot.
type Store struct {
	mu          sync.RWMutex
	configs     map[string]*models.AvailabilityConfig
	bookings    map[string]*models.Booking
	maxBookings int
}

// NewStore returns an empty store with the given global booking ceiling.
func NewStore(maxBookings int) *Store {
	return &Store{
		configs:     make(map[string]*models.AvailabilityConfig),
		bookings:    make(map[string]*models.Booking),
		maxBookings: maxBookings,
	}
}

// activeBookingsLocked returns the non-canceled bookings for a site and date.
// Callers must hold at least the read lock.
func (st *Store) activeBookingsLocked(siteID, date string) []*models.Booking {
	var out []*models.Booking
	for _, b := range st.bookings {
		if b.SiteID == siteID && b.Date == date && b.Status != models.BookingCanceled {
			out = append(out, b)
		}
	}
	return out
}
