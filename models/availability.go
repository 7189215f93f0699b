package models

import "time"

// TimeWindow is one contiguous open interval within a single day.
// Start and End are 24-hour "HH:MM" clock times with Start < End.
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklySchedule holds the recurring open windows for each day of the week.
// A nil slice means the business is closed that day.
type WeeklySchedule struct {
	Monday    []TimeWindow `json:"monday"`
	Tuesday   []TimeWindow `json:"tuesday"`
	Wednesday []TimeWindow `json:"wednesday"`
	Thursday  []TimeWindow `json:"thursday"`
	Friday    []TimeWindow `json:"friday"`
	Saturday  []TimeWindow `json:"saturday"`
	Sunday    []TimeWindow `json:"sunday"`
}

// WindowsFor returns the windows for the given weekday, nil when closed.
func (s WeeklySchedule) WindowsFor(day time.Weekday) []TimeWindow {
	switch day {
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	case time.Sunday:
		return s.Sunday
	}
	return nil
}

func (s WeeklySchedule) clone() WeeklySchedule {
	return WeeklySchedule{
		Monday:    append([]TimeWindow(nil), s.Monday...),
		Tuesday:   append([]TimeWindow(nil), s.Tuesday...),
		Wednesday: append([]TimeWindow(nil), s.Wednesday...),
		Thursday:  append([]TimeWindow(nil), s.Thursday...),
		Friday:    append([]TimeWindow(nil), s.Friday...),
		Saturday:  append([]TimeWindow(nil), s.Saturday...),
		Sunday:    append([]TimeWindow(nil), s.Sunday...),
	}
}

// AvailabilityConfig is the per-site booking configuration.
type AvailabilityConfig struct {
	SiteID       string         `json:"siteId"`
	BusinessName string         `json:"businessName"`
	Timezone     string         `json:"timezone"` // advisory label, not used for conversion
	SlotDuration int            `json:"slotDuration"`
	BufferTime   int            `json:"bufferTime"`
	Schedule     WeeklySchedule `json:"schedule"`
	BlockedDates []string       `json:"blockedDates"` // "YYYY-MM-DD" dates fully closed
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// IsBlocked reports whether the given "YYYY-MM-DD" date is fully closed.
func (c *AvailabilityConfig) IsBlocked(date string) bool {
	for _, d := range c.BlockedDates {
		if d == date {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, safe to hand out after the store unlocks.
func (c *AvailabilityConfig) Clone() *AvailabilityConfig {
	cp := *c
	cp.Schedule = c.Schedule.clone()
	cp.BlockedDates = append([]string(nil), c.BlockedDates...)
	return &cp
}

// AvailabilityUpdate carries a partial configuration update. Nil fields are
// left untouched on the stored record.
type AvailabilityUpdate struct {
	BusinessName *string         `json:"businessName"`
	Timezone     *string         `json:"timezone"`
	SlotDuration *int            `json:"slotDuration"`
	BufferTime   *int            `json:"bufferTime"`
	Schedule     *WeeklySchedule `json:"schedule"`
	BlockedDates *[]string       `json:"blockedDates"`
}

// AvailableSlot is a derived candidate appointment interval. It is computed
// on demand and never persisted.
type AvailableSlot struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}
