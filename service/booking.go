package service

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"cineplex-booking-cli/model"
	"cineplex-booking-cli/store"
)

// BookingService is the transaction coordinator. Create runs the whole
// sequence inside the shared gate, so the availability check and the seat
// assignment cannot interleave with another mutation: resolve showtime, movie
// and cinema, verify every seat free, price the tickets, mint the transaction
// id, persist the booking, mark the seats and persist the showtime.
type BookingService struct {
	gate     *sync.Mutex
	store    *store.Store
	log      *zap.Logger
	bookings []model.Booking
	now      func() time.Time

	showtimes *ShowtimeService
	cinemas   *CinemaService
	settings  *SettingsService
	catalog   Catalog
}

// Create books the given seats on a showtime. Validation failures leave no
// state behind: nothing is mutated until every seat has been checked.
func (s *BookingService) Create(customerID, showtimeID string, seats []model.Seat, requestedTier model.TicketType) (model.Booking, error) {
	if len(seats) == 0 {
		return model.Booking{}, fmt.Errorf("booking needs at least one seat: %w", ErrInvalidSeat)
	}

	s.gate.Lock()
	defer s.gate.Unlock()

	i := s.showtimes.indexLocked(showtimeID)
	if i < 0 {
		return model.Booking{}, fmt.Errorf("showtime %s: %w", showtimeID, ErrNotFound)
	}
	showtime := s.showtimes.showtimes[i]

	movie, err := s.movieLocked(showtime.MovieID)
	if err != nil {
		return model.Booking{}, err
	}
	if movie.Status == model.StatusComingSoon {
		return model.Booking{}, fmt.Errorf("movie %q: %w", movie.Title, ErrNotBookable)
	}
	cinema, err := s.cinemas.getLocked(showtime.CinemaID)
	if err != nil {
		return model.Booking{}, err
	}

	seen := make(map[model.Seat]bool, len(seats))
	for _, seat := range seats {
		if !showtime.Seats.InBounds(seat) {
			return model.Booking{}, fmt.Errorf("seat (%d,%d): %w", seat.Row, seat.Col, ErrInvalidSeat)
		}
		// A repeated coordinate would price twice but flip once.
		if seen[seat] {
			return model.Booking{}, fmt.Errorf("seat (%d,%d) listed twice: %w", seat.Row, seat.Col, ErrInvalidSeat)
		}
		seen[seat] = true
		if !showtime.Seats.Available(seat) {
			return model.Booking{}, fmt.Errorf("seat (%d,%d): %w", seat.Row, seat.Col, ErrSeatUnavailable)
		}
	}

	scheme := s.settings.schemeLocked()
	tier := resolveTier(scheme, showtime.Datetime, requestedTier)
	total := totalPrice(scheme, movie.Blockbuster, showtime.ShowType, cinema.Class, tier, showtime.Datetime, len(seats))

	booking := model.Booking{
		TransactionID: cinema.CineplexCode + s.now().Format(model.TransactionIDLayout),
		CustomerID:    customerID,
		CinemaID:      cinema.ID,
		MovieID:       movie.ID,
		ShowtimeID:    showtime.ID,
		Seats:         append([]model.Seat{}, seats...),
		TotalPrice:    total,
		TicketType:    tier,
		CreatedAt:     s.now(),
	}

	s.bookings = append(s.bookings, booking)
	if err := s.store.SaveBookings(s.bookings); err != nil {
		s.bookings = s.bookings[:len(s.bookings)-1]
		return model.Booking{}, err
	}
	if err := s.showtimes.assignSeatsLocked(showtime.ID, seats, true); err != nil {
		return model.Booking{}, err
	}

	s.log.Info("booking created",
		zap.String("transaction", booking.TransactionID),
		zap.String("customer", customerID),
		zap.String("showtime", showtime.ID),
		zap.Int("seats", len(seats)),
		zap.String("total", total.StringFixed(2)))
	return booking.Clone(), nil
}

// Cancel releases a booking's seats and removes the record, the symmetric
// inverse of Create.
func (s *BookingService) Cancel(transactionID string) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	for i, booking := range s.bookings {
		if booking.TransactionID != transactionID {
			continue
		}
		removed := s.bookings[i]
		s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
		if err := s.store.SaveBookings(s.bookings); err != nil {
			s.bookings = append(s.bookings[:i], append([]model.Booking{removed}, s.bookings[i:]...)...)
			return err
		}
		if err := s.showtimes.assignSeatsLocked(removed.ShowtimeID, removed.Seats, false); err != nil {
			return err
		}
		s.log.Info("booking cancelled", zap.String("transaction", transactionID))
		return nil
	}
	return fmt.Errorf("booking %s: %w", transactionID, ErrNotFound)
}

// ByCustomer returns the customer's bookings in insertion order.
func (s *BookingService) ByCustomer(customerID string) []model.Booking {
	s.gate.Lock()
	defer s.gate.Unlock()

	var result []model.Booking
	for _, booking := range s.bookings {
		if booking.CustomerID == customerID {
			result = append(result, booking.Clone())
		}
	}
	return result
}

// ByShowtime returns the showtime's bookings in insertion order.
func (s *BookingService) ByShowtime(showtimeID string) []model.Booking {
	s.gate.Lock()
	defer s.gate.Unlock()

	var result []model.Booking
	for _, booking := range s.bookings {
		if booking.ShowtimeID == showtimeID {
			result = append(result, booking.Clone())
		}
	}
	return result
}

// List returns every booking.
func (s *BookingService) List() []model.Booking {
	s.gate.Lock()
	defer s.gate.Unlock()

	result := make([]model.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		result = append(result, booking.Clone())
	}
	return result
}

func (s *BookingService) countForShowtimeLocked(showtimeID string) int {
	count := 0
	for _, booking := range s.bookings {
		if booking.ShowtimeID == showtimeID {
			count++
		}
	}
	return count
}

// movieLocked reads through the catalog boundary. The concrete MovieService
// shares the gate, so it must not relock; other Catalog implementations are
// called as-is.
func (s *BookingService) movieLocked(id int) (model.Movie, error) {
	if movies, ok := s.catalog.(*MovieService); ok {
		return movies.movieLocked(id)
	}
	return s.catalog.Movie(id)
}
