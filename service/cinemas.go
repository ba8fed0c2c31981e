package service

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"cineplex-booking-cli/model"
	"cineplex-booking-cli/store"
)

var validate = validator.New()

// cinemaBatchInput is validated before a batch of cinemas is created. The
// cineplex code is the 3-letter venue brand shared by the batch and used as
// the booking transaction-id prefix.
type cinemaBatchInput struct {
	Code    string            `validate:"required,len=3,alpha,uppercase"`
	Classes []model.ClassType `validate:"required,min=1,dive,oneof=NORMAL PREMIUM"`
}

// CinemaService owns the cinema list. Removal is guarded by active bookings.
type CinemaService struct {
	gate    *sync.Mutex
	store   *store.Store
	log     *zap.Logger
	cinemas []model.Cinema

	showtimes *ShowtimeService
	bookings  *BookingService
}

// AddBatch creates one cinema per class under a shared cineplex code. Ids are
// assigned sequentially from the highest existing id.
func (s *CinemaService) AddBatch(code string, classes ...model.ClassType) ([]model.Cinema, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if err := validate.Struct(cinemaBatchInput{Code: code, Classes: classes}); err != nil {
		return nil, fmt.Errorf("invalid cinema batch: %w", err)
	}

	s.gate.Lock()
	defer s.gate.Unlock()

	nextID := 1
	for _, cinema := range s.cinemas {
		if cinema.ID >= nextID {
			nextID = cinema.ID + 1
		}
	}

	created := make([]model.Cinema, 0, len(classes))
	for _, class := range classes {
		created = append(created, model.Cinema{ID: nextID, Class: class, CineplexCode: code})
		nextID++
	}

	previous := s.cinemas
	s.cinemas = append(s.cinemas, created...)
	if err := s.store.SaveCinemas(s.cinemas); err != nil {
		s.cinemas = previous
		return nil, err
	}
	s.log.Info("cinema batch added", zap.String("code", code), zap.Int("count", len(created)))

	result := make([]model.Cinema, len(created))
	copy(result, created)
	return result, nil
}

// Remove deletes a cinema and its showtimes. It fails with ErrImmutable while
// any booking references a showtime of this cinema that has not started yet.
func (s *CinemaService) Remove(id int) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("cinema %d: %w", id, ErrNotFound)
	}

	now := s.bookings.now()
	for _, showtime := range s.showtimes.byCinemaLocked(id) {
		if showtime.Datetime.After(now) && s.bookings.countForShowtimeLocked(showtime.ID) > 0 {
			return fmt.Errorf("cinema %d has upcoming bookings: %w", id, ErrImmutable)
		}
	}

	removed := s.cinemas[i]
	s.cinemas = append(s.cinemas[:i], s.cinemas[i+1:]...)
	if err := s.store.SaveCinemas(s.cinemas); err != nil {
		s.cinemas = append(s.cinemas[:i], append([]model.Cinema{removed}, s.cinemas[i:]...)...)
		return err
	}
	if err := s.showtimes.removeByCinemaLocked(id); err != nil {
		return err
	}
	s.log.Info("cinema removed", zap.Int("id", id))
	return nil
}

// Get returns a copy of the cinema.
func (s *CinemaService) Get(id int) (model.Cinema, error) {
	s.gate.Lock()
	defer s.gate.Unlock()
	return s.getLocked(id)
}

// List returns every cinema in id order of creation.
func (s *CinemaService) List() []model.Cinema {
	s.gate.Lock()
	defer s.gate.Unlock()

	result := make([]model.Cinema, len(s.cinemas))
	copy(result, s.cinemas)
	return result
}

func (s *CinemaService) getLocked(id int) (model.Cinema, error) {
	i := s.indexLocked(id)
	if i < 0 {
		return model.Cinema{}, fmt.Errorf("cinema %d: %w", id, ErrNotFound)
	}
	return s.cinemas[i], nil
}

func (s *CinemaService) indexLocked(id int) int {
	for i := range s.cinemas {
		if s.cinemas[i].ID == id {
			return i
		}
	}
	return -1
}
