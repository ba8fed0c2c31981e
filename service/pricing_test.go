package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"cineplex-booking-cli/model"
)

var (
	thursdayEvening = time.Date(2026, 9, 3, 19, 0, 0, 0, time.Local)
	fridayEvening   = time.Date(2026, 9, 4, 19, 0, 0, 0, time.Local)
	fridayMatinee   = time.Date(2026, 9, 4, 14, 0, 0, 0, time.Local)
	sundayAfternoon = time.Date(2026, 9, 6, 15, 0, 0, 0, time.Local)
	tuesdayMatinee  = time.Date(2026, 9, 8, 14, 0, 0, 0, time.Local)
)

func TestResolveTier_WeekdayEveningForcesPeak(t *testing.T) {
	scheme := model.DefaultPriceScheme()
	for _, requested := range model.AllTicketTypes() {
		assert.Equal(t, model.TicketPeak, resolveTier(scheme, fridayEvening, requested),
			"friday 19:00 must price as peak regardless of requested tier %s", requested)
		assert.Equal(t, model.TicketPeak, resolveTier(scheme, thursdayEvening, requested))
	}
}

func TestResolveTier_WeekendForcesSuperPeak(t *testing.T) {
	scheme := model.DefaultPriceScheme()
	for _, requested := range model.AllTicketTypes() {
		assert.Equal(t, model.TicketSuperPeak, resolveTier(scheme, sundayAfternoon, requested))
	}
}

func TestResolveTier_HolidayForcesSuperPeak(t *testing.T) {
	scheme := model.DefaultPriceScheme()
	scheme.Holidays = []string{"2026-09-08"}
	assert.Equal(t, model.TicketSuperPeak, resolveTier(scheme, tuesdayMatinee, model.TicketStudent))
}

func TestResolveTier_QuietSlotPassesThrough(t *testing.T) {
	scheme := model.DefaultPriceScheme()
	assert.Equal(t, model.TicketStudent, resolveTier(scheme, tuesdayMatinee, model.TicketStudent))
	// Friday before 18:00 is not an evening slot.
	assert.Equal(t, model.TicketSenior, resolveTier(scheme, fridayMatinee, model.TicketSenior))
}

func exampleScheme() model.PriceScheme {
	return model.PriceScheme{
		BaseAdultPrice:       decimal.NewFromInt(10),
		BlockbusterSurcharge: decimal.NewFromInt(8),
		ShowTypeSurcharge: map[model.ShowType]decimal.Decimal{
			model.ShowThreeDimensional: decimal.NewFromInt(5),
		},
		CinemaClassSurcharge: map[model.ClassType]decimal.Decimal{
			model.ClassPremium: decimal.NewFromInt(8),
		},
		TicketTypeSurcharge: map[model.TicketType]decimal.Decimal{
			model.TicketPeak: decimal.NewFromInt(5),
		},
	}
}

func TestUnitPrice_SurchargesAreAdditive(t *testing.T) {
	// Blockbuster 3D premium show on a Friday evening, non-peak requested:
	// the override makes it peak, so 10+8+5+8+5 = 36.
	price := unitPrice(exampleScheme(), true, model.ShowThreeDimensional, model.ClassPremium, model.TicketNonPeak, fridayEvening)
	assert.True(t, price.Equal(decimal.NewFromInt(36)), "got %s", price)
}

func TestTotalPrice_MultipliesBySeatCount(t *testing.T) {
	total := totalPrice(exampleScheme(), true, model.ShowThreeDimensional, model.ClassPremium, model.TicketNonPeak, fridayEvening, 2)
	assert.True(t, total.Equal(decimal.NewFromInt(72)), "got %s", total)
}

func TestTotalPrice_NonPositiveSeatCountIsZero(t *testing.T) {
	assert.True(t, totalPrice(exampleScheme(), false, model.ShowDigital, model.ClassNormal, model.TicketNonPeak, tuesdayMatinee, 0).IsZero())
	assert.True(t, totalPrice(exampleScheme(), false, model.ShowDigital, model.ClassNormal, model.TicketNonPeak, tuesdayMatinee, -3).IsZero())
}

func TestUnitPrice_MissingSurchargeKeysReadAsZero(t *testing.T) {
	scheme := exampleScheme()
	price := unitPrice(scheme, false, model.ShowDigital, model.ClassNormal, model.TicketNonPeak, tuesdayMatinee)
	assert.True(t, price.Equal(decimal.NewFromInt(10)), "got %s", price)
}

func TestUnitPrice_NegativeSurchargeDiscounts(t *testing.T) {
	scheme := exampleScheme()
	scheme.TicketTypeSurcharge[model.TicketStudent] = decimal.NewFromInt(-3)
	price := unitPrice(scheme, false, model.ShowDigital, model.ClassNormal, model.TicketStudent, tuesdayMatinee)
	assert.True(t, price.Equal(decimal.NewFromInt(7)), "got %s", price)
}

func TestPricingService_ReadsCurrentScheme(t *testing.T) {
	app := newTestApp(t)
	if err := app.Settings.SetScheme(exampleScheme()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	assert.Equal(t, model.TicketPeak, app.Pricing.ResolveTier(fridayEvening, model.TicketNonPeak))
	total := app.Pricing.Total(true, model.ShowThreeDimensional, model.ClassPremium, model.TicketNonPeak, fridayEvening, 2)
	assert.True(t, total.Equal(decimal.NewFromInt(72)), "got %s", total)
}
