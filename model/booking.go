package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionIDLayout is the timestamp suffix of a booking transaction id,
// appended to the cinema's cineplex code.
const TransactionIDLayout = "200601021504"

type Booking struct {
	TransactionID string          `json:"transactionId"`
	CustomerID    string          `json:"customerId"`
	CinemaID      int             `json:"cinemaId"`
	MovieID       int             `json:"movieId"`
	ShowtimeID    string          `json:"showtimeId"`
	Seats         []Seat          `json:"seats"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	TicketType    TicketType      `json:"ticketType"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Clone returns a copy with an independent seat list.
func (b Booking) Clone() Booking {
	clone := b
	clone.Seats = make([]Seat, len(b.Seats))
	copy(clone.Seats, b.Seats)
	return clone
}
