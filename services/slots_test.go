package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookery/models"
)

const (
	testMonday = "2025-06-09" // a Monday
	testSunday = "2025-06-08" // a Sunday
)

func mondayConfig() *models.AvailabilityConfig {
	return &models.AvailabilityConfig{
		SiteID:       "site-1",
		BusinessName: "Acme Barbershop",
		Timezone:     "America/New_York",
		SlotDuration: 60,
		BufferTime:   15,
		Schedule: models.WeeklySchedule{
			Monday: []models.TimeWindow{{Start: "09:00", End: "17:00"}},
		},
	}
}

func TestGenerateSlotsWalksWindowWithBufferStride(t *testing.T) {
	slots := generateSlots(mondayConfig(), testMonday, nil)

	wantStarts := []string{"09:00", "10:15", "11:30", "12:45", "14:00", "15:15"}
	require.Len(t, slots, len(wantStarts))
	for i, slot := range slots {
		assert.Equal(t, wantStarts[i], slot.StartTime)
		assert.True(t, slot.Available)
		assert.Equal(t, testMonday, slot.Date)

		// Every slot is exactly slotDuration long.
		start, err := parseClock(slot.StartTime)
		require.NoError(t, err)
		end, err := parseClock(slot.EndTime)
		require.NoError(t, err)
		assert.Equal(t, 60, end-start)
	}

	// Consecutive slots leave at least bufferTime between them.
	for i := 1; i < len(slots); i++ {
		prevEnd, _ := parseClock(slots[i-1].EndTime)
		nextStart, _ := parseClock(slots[i].StartTime)
		assert.GreaterOrEqual(t, nextStart-prevEnd, 15)
	}
}

func TestGenerateSlotsBookingBlocksOverlapWithBuffer(t *testing.T) {
	booked := []*models.Booking{{
		SiteID:    "site-1",
		Date:      testMonday,
		StartTime: "10:15",
		EndTime:   "11:15",
		Status:    models.BookingConfirmed,
	}}

	slots := generateSlots(mondayConfig(), testMonday, booked)
	require.Len(t, slots, 6)

	byStart := map[string]bool{}
	for _, slot := range slots {
		byStart[slot.StartTime] = slot.Available
	}
	// The booking occupies [10:15, 11:30) once the buffer is added.
	assert.True(t, byStart["09:00"])
	assert.False(t, byStart["10:15"])
	// 11:30 starts exactly at the buffer boundary, not inside it.
	assert.True(t, byStart["11:30"])
	assert.True(t, byStart["12:45"])
}

func TestGenerateSlotsClosedDay(t *testing.T) {
	slots := generateSlots(mondayConfig(), testSunday, nil)
	assert.Empty(t, slots)
}

func TestGenerateSlotsBlockedDate(t *testing.T) {
	cfg := mondayConfig()
	cfg.BlockedDates = []string{testMonday}
	slots := generateSlots(cfg, testMonday, nil)
	assert.Empty(t, slots)
}

func TestGenerateSlotsInvalidDate(t *testing.T) {
	slots := generateSlots(mondayConfig(), "not-a-date", nil)
	assert.Empty(t, slots)
}

func TestGenerateSlotsClampsBadStoredValues(t *testing.T) {
	cfg := mondayConfig()
	// A record written past validation must not stall the walk.
	cfg.SlotDuration = 0
	cfg.BufferTime = -30

	slots := generateSlots(cfg, testMonday, nil)
	require.NotEmpty(t, slots)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "09:05", slots[0].EndTime)
	assert.Equal(t, "09:05", slots[1].StartTime)
}

func TestGenerateSlotsWindowOrderIsPreserved(t *testing.T) {
	cfg := mondayConfig()
	// Out-of-order windows stay in configuration order, no global re-sort.
	cfg.Schedule.Monday = []models.TimeWindow{
		{Start: "14:00", End: "16:00"},
		{Start: "09:00", End: "11:00"},
	}
	cfg.BufferTime = 0

	slots := generateSlots(cfg, testMonday, nil)
	require.Len(t, slots, 4)
	assert.Equal(t, "14:00", slots[0].StartTime)
	assert.Equal(t, "15:00", slots[1].StartTime)
	assert.Equal(t, "09:00", slots[2].StartTime)
	assert.Equal(t, "10:00", slots[3].StartTime)
}

func TestGenerateSlotsIsIdempotent(t *testing.T) {
	cfg := mondayConfig()
	booked := []*models.Booking{{
		SiteID: "site-1", Date: testMonday,
		StartTime: "09:00", EndTime: "10:00",
		Status: models.BookingPending,
	}}

	first := generateSlots(cfg, testMonday, booked)
	second := generateSlots(cfg, testMonday, booked)
	assert.Equal(t, first, second)
}

func TestParseClock(t *testing.T) {
	minutes, err := parseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)

	for _, bad := range []string{"9:30", "09:60", "24:00", "0930", "aa:bb", ""} {
		_, err := parseClock(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:05", formatClock(5))
	assert.Equal(t, "17:00", formatClock(1020))
}
