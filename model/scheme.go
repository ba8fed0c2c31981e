package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// HolidayLayout is the date-only format holidays are stored in.
const HolidayLayout = time.DateOnly

// PriceScheme is the system-wide pricing configuration. Surcharges are
// additive and may be negative; a missing surcharge key reads as zero.
type PriceScheme struct {
	BaseAdultPrice       decimal.Decimal                `json:"baseAdultPrice"`
	BlockbusterSurcharge decimal.Decimal                `json:"blockbusterSurcharge"`
	ShowTypeSurcharge    map[ShowType]decimal.Decimal   `json:"showTypeSurcharge"`
	CinemaClassSurcharge map[ClassType]decimal.Decimal  `json:"cinemaClassSurcharge"`
	TicketTypeSurcharge  map[TicketType]decimal.Decimal `json:"ticketTypeSurcharge"`
	Holidays             []string                       `json:"holidays"`
}

// DefaultPriceScheme is the scheme a fresh install starts with.
func DefaultPriceScheme() PriceScheme {
	return PriceScheme{
		BaseAdultPrice:       decimal.NewFromFloat(8.50),
		BlockbusterSurcharge: decimal.NewFromFloat(2.00),
		ShowTypeSurcharge: map[ShowType]decimal.Decimal{
			ShowThreeDimensional: decimal.NewFromFloat(3.00),
		},
		CinemaClassSurcharge: map[ClassType]decimal.Decimal{
			ClassPremium: decimal.NewFromFloat(4.00),
		},
		TicketTypeSurcharge: map[TicketType]decimal.Decimal{
			TicketStudent:   decimal.NewFromFloat(-3.00),
			TicketSenior:    decimal.NewFromFloat(-4.00),
			TicketPeak:      decimal.NewFromFloat(1.50),
			TicketSuperPeak: decimal.NewFromFloat(3.00),
		},
	}
}

// Clone returns a deep copy so in-progress edits never leak into a
// computation already holding the scheme.
func (p PriceScheme) Clone() PriceScheme {
	clone := p
	clone.ShowTypeSurcharge = make(map[ShowType]decimal.Decimal, len(p.ShowTypeSurcharge))
	for k, v := range p.ShowTypeSurcharge {
		clone.ShowTypeSurcharge[k] = v
	}
	clone.CinemaClassSurcharge = make(map[ClassType]decimal.Decimal, len(p.CinemaClassSurcharge))
	for k, v := range p.CinemaClassSurcharge {
		clone.CinemaClassSurcharge[k] = v
	}
	clone.TicketTypeSurcharge = make(map[TicketType]decimal.Decimal, len(p.TicketTypeSurcharge))
	for k, v := range p.TicketTypeSurcharge {
		clone.TicketTypeSurcharge[k] = v
	}
	clone.Holidays = make([]string, len(p.Holidays))
	copy(clone.Holidays, p.Holidays)
	return clone
}

// IsHoliday reports whether the date part of t is a configured holiday.
func (p PriceScheme) IsHoliday(t time.Time) bool {
	day := t.Format(HolidayLayout)
	for _, h := range p.Holidays {
		if h == day {
			return true
		}
	}
	return false
}
