package service

import "errors"

// Sentinel errors surfaced by the booking core. The presentation layer owns
// user-facing messaging and retry prompts; nothing here retries on its own.
var (
	ErrNotFound        = errors.New("record not found")
	ErrClash           = errors.New("showtime clashes with an existing showtime")
	ErrImmutable       = errors.New("record has dependent bookings and cannot be changed")
	ErrHasBookings     = errors.New("showtime has bookings and cannot be removed")
	ErrSeatUnavailable = errors.New("seat is already taken")
	ErrInvalidSeat     = errors.New("seat coordinate is outside the grid")
	ErrNotBookable     = errors.New("movie is not open for booking yet")
)
