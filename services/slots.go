package services

import (
	"fmt"
	"time"

	"bookery/models"
)

// minSlotDuration is the floor applied to slot durations both at update
// time and, defensively, inside slot generation itself so a bad stored
// value can never stall the window walk.
const minSlotDuration = 5

// bookedInterval is a booking's occupied span in minutes from midnight,
// with the buffer already added to its end.
type bookedInterval struct {
	start int
	end   int
}

// generateSlots computes the ordered candidate slots for a date from a
// config and the current non-canceled bookings for that site and date.
// It is a pure function of its inputs: same config, date, and booking
// snapshot always yield the same sequence.
func generateSlots(cfg *models.AvailabilityConfig, date string, booked []*models.Booking) []models.AvailableSlot {
	slots := []models.AvailableSlot{}

	duration := cfg.SlotDuration
	if duration < minSlotDuration {
		duration = minSlotDuration
	}
	buffer := cfg.BufferTime
	if buffer < 0 {
		buffer = 0
	}

	day, err := weekdayOf(date)
	if err != nil {
		return slots
	}
	if cfg.IsBlocked(date) {
		return slots
	}
	windows := cfg.Schedule.WindowsFor(day)
	if windows == nil {
		return slots
	}

	occupied := occupiedIntervals(booked, buffer)

	// Windows are walked in their stored order; slot order follows window
	// order, never a global time sort.
	for _, w := range windows {
		winStart, err := parseClock(w.Start)
		if err != nil {
			continue
		}
		winEnd, err := parseClock(w.End)
		if err != nil {
			continue
		}
		for cur := winStart; cur+duration <= winEnd; cur += duration + buffer {
			slot := models.AvailableSlot{
				Date:      date,
				StartTime: formatClock(cur),
				EndTime:   formatClock(cur + duration),
				Available: true,
			}
			for _, iv := range occupied {
				if cur < iv.end && cur+duration > iv.start {
					slot.Available = false
					break
				}
			}
			slots = append(slots, slot)
		}
	}
	return slots
}

// occupiedIntervals converts bookings into buffered minute intervals,
// dropping any record whose times fail to parse.
func occupiedIntervals(booked []*models.Booking, buffer int) []bookedInterval {
	var out []bookedInterval
	for _, b := range booked {
		start, err := parseClock(b.StartTime)
		if err != nil {
			continue
		}
		end, err := parseClock(b.EndTime)
		if err != nil {
			continue
		}
		out = append(out, bookedInterval{start: start, end: end + buffer})
	}
	return out
}

// weekdayOf derives the day of week from an ISO "YYYY-MM-DD" date. This is
// a pure calendar computation; the config's timezone label plays no part.
func weekdayOf(date string) (time.Weekday, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.Weekday(), nil
}

// parseClock converts a 24-hour "HH:MM" string to minutes from midnight.
func parseClock(clock string) (int, error) {
	var hour, minute int
	if len(clock) != 5 || clock[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", clock)
	}
	if _, err := fmt.Sscanf(clock, "%2d:%2d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", clock)
	}
	return hour*60 + minute, nil
}

// formatClock converts minutes from midnight back to a zero-padded "HH:MM".
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
