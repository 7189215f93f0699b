package services

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookery/models"
)

func newAvailabilityService() *DefaultAvailabilityService {
	return &DefaultAvailabilityService{Store: NewStore(5000)}
}

func TestProvisionSiteDefaults(t *testing.T) {
	svc := newAvailabilityService()

	cfg, err := svc.ProvisionSite("site-1", "Acme Barbershop")
	require.NoError(t, err)
	assert.Equal(t, "site-1", cfg.SiteID)
	assert.Equal(t, "Acme Barbershop", cfg.BusinessName)
	assert.Equal(t, 60, cfg.SlotDuration)
	assert.Equal(t, 15, cfg.BufferTime)
	assert.NotNil(t, cfg.Schedule.Monday)
	assert.Nil(t, cfg.Schedule.Saturday)
	assert.Nil(t, cfg.Schedule.Sunday)
	assert.Empty(t, cfg.BlockedDates)
}

func TestProvisionSiteRejectsDuplicates(t *testing.T) {
	svc := newAvailabilityService()

	_, err := svc.ProvisionSite("site-1", "Acme Barbershop")
	require.NoError(t, err)

	_, err = svc.ProvisionSite("site-1", "Another Name")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestProvisionSiteRejectsEmptyFields(t *testing.T) {
	svc := newAvailabilityService()

	_, err := svc.ProvisionSite("", "Acme")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.ProvisionSite("site-1", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGetConfigNotFound(t *testing.T) {
	svc := newAvailabilityService()

	_, err := svc.GetConfig("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateConfigMergesPartialFields(t *testing.T) {
	svc := newAvailabilityService()
	_, err := svc.ProvisionSite("site-1", "Acme Barbershop")
	require.NoError(t, err)

	duration := 30
	cfg, err := svc.UpdateConfig("site-1", models.AvailabilityUpdate{SlotDuration: &duration})
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.SlotDuration)
	// Untouched fields survive the merge.
	assert.Equal(t, 15, cfg.BufferTime)
	assert.Equal(t, "Acme Barbershop", cfg.BusinessName)

	name := "Acme Salon"
	blocked := []string{"2025-12-25"}
	cfg, err = svc.UpdateConfig("site-1", models.AvailabilityUpdate{
		BusinessName: &name,
		BlockedDates: &blocked,
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Salon", cfg.BusinessName)
	assert.Equal(t, []string{"2025-12-25"}, cfg.BlockedDates)
	assert.Equal(t, 30, cfg.SlotDuration)
}

func TestUpdateConfigRejectsOutOfRangeValues(t *testing.T) {
	svc := newAvailabilityService()
	_, err := svc.ProvisionSite("site-1", "Acme Barbershop")
	require.NoError(t, err)

	tooShort := 4
	_, err = svc.UpdateConfig("site-1", models.AvailabilityUpdate{SlotDuration: &tooShort})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	negative := -1
	_, err = svc.UpdateConfig("site-1", models.AvailabilityUpdate{BufferTime: &negative})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// A rejected update leaves the record untouched.
	cfg, err := svc.GetConfig("site-1")
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.SlotDuration)
	assert.Equal(t, 15, cfg.BufferTime)
}

func TestUpdateConfigNotFound(t *testing.T) {
	svc := newAvailabilityService()

	duration := 30
	_, err := svc.UpdateConfig("missing", models.AvailabilityUpdate{SlotDuration: &duration})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetAvailableSlotsUnconfiguredSite(t *testing.T) {
	svc := newAvailabilityService()

	slots := svc.GetAvailableSlots("missing", testMonday)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGetConfigReturnsDetachedCopy(t *testing.T) {
	svc := newAvailabilityService()
	_, err := svc.ProvisionSite("site-1", "Acme Barbershop")
	require.NoError(t, err)

	cfg, err := svc.GetConfig("site-1")
	require.NoError(t, err)
	cfg.BusinessName = "mutated"
	cfg.Schedule.Monday[0].Start = "00:00"

	fresh, err := svc.GetConfig("site-1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Barbershop", fresh.BusinessName)
	assert.Equal(t, "09:00", fresh.Schedule.Monday[0].Start)
}
