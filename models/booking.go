package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCanceled  BookingStatus = "canceled"
	// BookingCompleted is part of the status domain but no operation in this
	// engine transitions into it; it is reserved for an external worker.
	BookingCompleted BookingStatus = "completed"
)

// Booking represents a customer appointment record.
type Booking struct {
	ID               string        `json:"id"`     // Unique booking identifier (UUID)
	SiteID           string        `json:"siteId"` // Site the booking belongs to
	BusinessName     string        `json:"businessName"` // Copied from the config at creation time
	CustomerName     string        `json:"customerName"`
	CustomerEmail    string        `json:"customerEmail"`
	CustomerPhone    string        `json:"customerPhone,omitempty"`
	Service          string        `json:"service,omitempty"` // Optional service label
	Notes            string        `json:"notes,omitempty"`
	Date             string        `json:"date"`      // "YYYY-MM-DD"
	StartTime        string        `json:"startTime"` // "HH:MM"
	EndTime          string        `json:"endTime"`   // startTime + slotDuration at creation
	Status           BookingStatus `json:"status"`
	ConfirmationCode string        `json:"confirmationCode"` // Short shareable alternate lookup key
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// BookingRequest holds all information required to create a booking.
type BookingRequest struct {
	SiteID        string `json:"siteId" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required"`
	CustomerPhone string `json:"customerPhone"`
	Service       string `json:"service"`
	Notes         string `json:"notes"`
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"startTime" binding:"required"`
}
