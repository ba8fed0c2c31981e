package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cineplex-booking-cli/model"
	"cineplex-booking-cli/store"
)

// ShowtimeService owns the showtimes of every cinema. The clash invariant
// holds at all times: no two showtimes of one cinema share the exact same
// instant.
type ShowtimeService struct {
	gate      *sync.Mutex
	store     *store.Store
	log       *zap.Logger
	showtimes []model.Showtime

	gridRows int
	gridCols int

	bookings *BookingService
}

// Add schedules a new showtime with a fresh fully-available grid. It fails
// with ErrClash when the cinema already has a showtime at that exact instant.
func (s *ShowtimeService) Add(cinemaID, movieID int, datetime time.Time, showType model.ShowType) (model.Showtime, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if s.clashLocked(cinemaID, datetime, "") {
		return model.Showtime{}, fmt.Errorf("cinema %d at %s: %w", cinemaID, datetime.Format(time.DateTime), ErrClash)
	}

	showtime := model.Showtime{
		ID:       uuid.NewString(),
		CinemaID: cinemaID,
		MovieID:  movieID,
		Datetime: datetime,
		ShowType: showType,
		Seats:    model.NewSeatGrid(s.gridRows, s.gridCols),
	}
	s.showtimes = append(s.showtimes, showtime)
	if err := s.store.SaveShowtimes(s.showtimes); err != nil {
		s.showtimes = s.showtimes[:len(s.showtimes)-1]
		return model.Showtime{}, err
	}
	s.log.Info("showtime added",
		zap.String("id", showtime.ID),
		zap.Int("cinema", cinemaID),
		zap.Int("movie", movieID),
		zap.Time("datetime", datetime))
	return showtime.Clone(), nil
}

// ShowtimeUpdate carries the fields Update may change. Nil pointers leave the
// field untouched.
type ShowtimeUpdate struct {
	CinemaID *int
	MovieID  *int
	Datetime *time.Time
	ShowType *model.ShowType
}

// Update edits a showtime. Once any booking references the showtime its movie
// and show type are frozen (ErrImmutable); cinema or datetime changes re-run
// clash detection against the new slot.
func (s *ShowtimeService) Update(id string, update ShowtimeUpdate) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("showtime %s: %w", id, ErrNotFound)
	}
	current := s.showtimes[i]

	if s.bookings.countForShowtimeLocked(id) > 0 {
		if update.MovieID != nil && *update.MovieID != current.MovieID {
			return fmt.Errorf("showtime %s movie: %w", id, ErrImmutable)
		}
		if update.ShowType != nil && *update.ShowType != current.ShowType {
			return fmt.Errorf("showtime %s show type: %w", id, ErrImmutable)
		}
	}

	next := current
	if update.CinemaID != nil {
		next.CinemaID = *update.CinemaID
	}
	if update.MovieID != nil {
		next.MovieID = *update.MovieID
	}
	if update.Datetime != nil {
		next.Datetime = *update.Datetime
	}
	if update.ShowType != nil {
		next.ShowType = *update.ShowType
	}

	if next.CinemaID != current.CinemaID || !next.Datetime.Equal(current.Datetime) {
		if s.clashLocked(next.CinemaID, next.Datetime, id) {
			return fmt.Errorf("cinema %d at %s: %w", next.CinemaID, next.Datetime.Format(time.DateTime), ErrClash)
		}
	}

	s.showtimes[i] = next
	if err := s.store.SaveShowtimes(s.showtimes); err != nil {
		s.showtimes[i] = current
		return err
	}
	s.log.Info("showtime updated", zap.String("id", id))
	return nil
}

// Remove deletes a showtime. It fails with ErrHasBookings while any booking
// references it.
func (s *ShowtimeService) Remove(id string) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("showtime %s: %w", id, ErrNotFound)
	}
	if s.bookings.countForShowtimeLocked(id) > 0 {
		return fmt.Errorf("showtime %s: %w", id, ErrHasBookings)
	}

	removed := s.showtimes[i]
	s.showtimes = append(s.showtimes[:i], s.showtimes[i+1:]...)
	if err := s.store.SaveShowtimes(s.showtimes); err != nil {
		s.showtimes = append(s.showtimes[:i], append([]model.Showtime{removed}, s.showtimes[i:]...)...)
		return err
	}
	s.log.Info("showtime removed", zap.String("id", id))
	return nil
}

// Get returns a copy of the showtime.
func (s *ShowtimeService) Get(id string) (model.Showtime, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return model.Showtime{}, fmt.Errorf("showtime %s: %w", id, ErrNotFound)
	}
	return s.showtimes[i].Clone(), nil
}

// ByMovie returns the movie's showtimes in insertion order.
func (s *ShowtimeService) ByMovie(movieID int) []model.Showtime {
	s.gate.Lock()
	defer s.gate.Unlock()

	var result []model.Showtime
	for _, showtime := range s.showtimes {
		if showtime.MovieID == movieID {
			result = append(result, showtime.Clone())
		}
	}
	return result
}

// ByCinema returns the cinema's showtimes in insertion order.
func (s *ShowtimeService) ByCinema(cinemaID int) []model.Showtime {
	s.gate.Lock()
	defer s.gate.Unlock()
	return s.byCinemaLocked(cinemaID)
}

// List returns every showtime in insertion order.
func (s *ShowtimeService) List() []model.Showtime {
	s.gate.Lock()
	defer s.gate.Unlock()

	result := make([]model.Showtime, 0, len(s.showtimes))
	for _, showtime := range s.showtimes {
		result = append(result, showtime.Clone())
	}
	return result
}

func (s *ShowtimeService) byCinemaLocked(cinemaID int) []model.Showtime {
	var result []model.Showtime
	for _, showtime := range s.showtimes {
		if showtime.CinemaID == cinemaID {
			result = append(result, showtime.Clone())
		}
	}
	return result
}

// clashLocked reports whether the cinema already has a showtime at exactly
// datetime, ignoring the showtime with the excluded id.
func (s *ShowtimeService) clashLocked(cinemaID int, datetime time.Time, excludeID string) bool {
	for _, showtime := range s.showtimes {
		if showtime.ID == excludeID {
			continue
		}
		if showtime.CinemaID == cinemaID && showtime.Datetime.Equal(datetime) {
			return true
		}
	}
	return false
}

func (s *ShowtimeService) indexLocked(id string) int {
	for i := range s.showtimes {
		if s.showtimes[i].ID == id {
			return i
		}
	}
	return -1
}

// assignSeatsLocked flips seats on the stored grid and persists the
// collection. Only the booking coordinator calls this, inside the gate.
func (s *ShowtimeService) assignSeatsLocked(id string, seats []model.Seat, makeUnavailable bool) error {
	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("showtime %s: %w", id, ErrNotFound)
	}
	s.showtimes[i].Seats.BulkAssign(seats, makeUnavailable)
	return s.store.SaveShowtimes(s.showtimes)
}

// removeByCinemaLocked drops every showtime of the cinema. The cinema
// registry calls this after its own booking guard has passed.
func (s *ShowtimeService) removeByCinemaLocked(cinemaID int) error {
	kept := s.showtimes[:0]
	for _, showtime := range s.showtimes {
		if showtime.CinemaID != cinemaID {
			kept = append(kept, showtime)
		}
	}
	s.showtimes = kept
	return s.store.SaveShowtimes(s.showtimes)
}
