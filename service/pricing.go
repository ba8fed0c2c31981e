package service

import (
	"time"

	"github.com/shopspring/decimal"

	"cineplex-booking-cli/model"
)

// peakHour is the local hour from which Thursday and Friday shows price as
// peak.
const peakHour = 18

// PricingService resolves ticket tiers and computes prices against the
// current scheme. Callers must resolve the tier before presenting any price,
// and treat the resolved tier as authoritative from that point on.
type PricingService struct {
	settings *SettingsService
}

// ResolveTier applies the time-based tier overrides: Thursday and Friday
// evenings force PEAK, weekends and holidays force SUPER_PEAK, anything else
// passes the requested tier through unchanged.
func (p *PricingService) ResolveTier(showDatetime time.Time, requested model.TicketType) model.TicketType {
	return resolveTier(p.settings.Scheme(), showDatetime, requested)
}

// UnitPrice computes the price of one ticket.
func (p *PricingService) UnitPrice(blockbuster bool, showType model.ShowType, class model.ClassType, requested model.TicketType, showDatetime time.Time) decimal.Decimal {
	return unitPrice(p.settings.Scheme(), blockbuster, showType, class, requested, showDatetime)
}

// Total computes the price of seatCount tickets; zero when seatCount <= 0.
func (p *PricingService) Total(blockbuster bool, showType model.ShowType, class model.ClassType, requested model.TicketType, showDatetime time.Time, seatCount int) decimal.Decimal {
	return totalPrice(p.settings.Scheme(), blockbuster, showType, class, requested, showDatetime, seatCount)
}

func resolveTier(scheme model.PriceScheme, showDatetime time.Time, requested model.TicketType) model.TicketType {
	weekday := showDatetime.Weekday()
	if (weekday == time.Thursday || weekday == time.Friday) && showDatetime.Hour() >= peakHour {
		return model.TicketPeak
	}
	if weekday == time.Saturday || weekday == time.Sunday || scheme.IsHoliday(showDatetime) {
		return model.TicketSuperPeak
	}
	return requested
}

func unitPrice(scheme model.PriceScheme, blockbuster bool, showType model.ShowType, class model.ClassType, requested model.TicketType, showDatetime time.Time) decimal.Decimal {
	price := scheme.BaseAdultPrice
	if blockbuster {
		price = price.Add(scheme.BlockbusterSurcharge)
	}
	price = price.Add(scheme.ShowTypeSurcharge[showType])
	price = price.Add(scheme.CinemaClassSurcharge[class])
	tier := resolveTier(scheme, showDatetime, requested)
	return price.Add(scheme.TicketTypeSurcharge[tier])
}

func totalPrice(scheme model.PriceScheme, blockbuster bool, showType model.ShowType, class model.ClassType, requested model.TicketType, showDatetime time.Time, seatCount int) decimal.Decimal {
	if seatCount <= 0 {
		return decimal.Zero
	}
	unit := unitPrice(scheme, blockbuster, showType, class, requested, showDatetime)
	return unit.Mul(decimal.NewFromInt(int64(seatCount)))
}
