package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"cineplex-booking-cli/model"
)

func TestSettingsScheme_ReturnsDefensiveCopy(t *testing.T) {
	app := newTestApp(t)

	scheme := app.Settings.Scheme()
	scheme.BaseAdultPrice = decimal.NewFromInt(999)
	scheme.TicketTypeSurcharge[model.TicketPeak] = decimal.NewFromInt(999)
	scheme.Holidays = append(scheme.Holidays, "2026-12-25")

	fresh := app.Settings.Scheme()
	assert.False(t, fresh.BaseAdultPrice.Equal(decimal.NewFromInt(999)))
	assert.False(t, fresh.TicketTypeSurcharge[model.TicketPeak].Equal(decimal.NewFromInt(999)))
	assert.NotContains(t, fresh.Holidays, "2026-12-25")
}

func TestSettingsHolidays_AddRemove(t *testing.T) {
	app := newTestApp(t)

	assert.NoError(t, app.Settings.AddHoliday("2026-12-25"))
	assert.NoError(t, app.Settings.AddHoliday("2026-12-25"), "re-adding is a no-op")
	assert.Contains(t, app.Settings.Scheme().Holidays, "2026-12-25")

	assert.Error(t, app.Settings.AddHoliday("25/12/2026"), "wrong layout is rejected")

	assert.NoError(t, app.Settings.RemoveHoliday("2026-12-25"))
	assert.NotContains(t, app.Settings.Scheme().Holidays, "2026-12-25")
	assert.NoError(t, app.Settings.RemoveHoliday("2026-12-25"), "removing an absent date is a no-op")
}
