package model

import (
	"fmt"
	"strings"
)

// ClassType is the comfort tier of a cinema hall.
type ClassType string

const (
	ClassNormal  ClassType = "NORMAL"
	ClassPremium ClassType = "PREMIUM"
)

// ShowType is the projection format of a showtime.
type ShowType string

const (
	ShowDigital          ShowType = "DIGITAL"
	ShowThreeDimensional ShowType = "3D"
)

// TicketType is the surcharge/discount category applied to one ticket.
type TicketType string

const (
	TicketStudent   TicketType = "STUDENT"
	TicketSenior    TicketType = "SENIOR"
	TicketNonPeak   TicketType = "NON_PEAK"
	TicketPeak      TicketType = "PEAK"
	TicketSuperPeak TicketType = "SUPER_PEAK"
)

// ShowStatus is the release state of a movie. ComingSoon movies are not
// bookable yet.
type ShowStatus string

const (
	StatusComingSoon   ShowStatus = "COMING_SOON"
	StatusPreview      ShowStatus = "PREVIEW"
	StatusNowShowing   ShowStatus = "NOW_SHOWING"
	StatusEndOfShowing ShowStatus = "END_OF_SHOWING"
)

func AllClassTypes() []ClassType {
	return []ClassType{ClassNormal, ClassPremium}
}

func AllShowTypes() []ShowType {
	return []ShowType{ShowDigital, ShowThreeDimensional}
}

func AllTicketTypes() []TicketType {
	return []TicketType{TicketStudent, TicketSenior, TicketNonPeak, TicketPeak, TicketSuperPeak}
}

// ParseTicketType matches the input against the known tiers,
// case-insensitively.
func ParseTicketType(s string) (TicketType, error) {
	candidate := TicketType(strings.ToUpper(strings.TrimSpace(s)))
	for _, tier := range AllTicketTypes() {
		if candidate == tier {
			return tier, nil
		}
	}
	return "", fmt.Errorf("unknown ticket tier %q", s)
}
