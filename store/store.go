// Package store persists the record collections as JSON files under a data
// directory. Each collection is written whole on every save; a missing file
// hydrates to the collection's documented default.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"cineplex-booking-cli/model"
)

const (
	cinemasFile   = "cinemas.json"
	showtimesFile = "showtimes.json"
	bookingsFile  = "bookings.json"
	moviesFile    = "movies.json"
	schemeFile    = "pricing.json"
)

type recordEnvelope[T any] struct {
	UpdatedAt time.Time `json:"updated_at"`
	Data      T         `json:"data"`
}

// Store reads and writes collections rooted at a data directory.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) LoadCinemas() ([]model.Cinema, error) {
	return loadCollection[[]model.Cinema](s.path(cinemasFile))
}

func (s *Store) SaveCinemas(cinemas []model.Cinema) error {
	return saveCollection(s.path(cinemasFile), cinemas)
}

func (s *Store) LoadShowtimes() ([]model.Showtime, error) {
	return loadCollection[[]model.Showtime](s.path(showtimesFile))
}

func (s *Store) SaveShowtimes(showtimes []model.Showtime) error {
	return saveCollection(s.path(showtimesFile), showtimes)
}

func (s *Store) LoadBookings() ([]model.Booking, error) {
	return loadCollection[[]model.Booking](s.path(bookingsFile))
}

func (s *Store) SaveBookings(bookings []model.Booking) error {
	return saveCollection(s.path(bookingsFile), bookings)
}

func (s *Store) LoadMovies() ([]model.Movie, error) {
	return loadCollection[[]model.Movie](s.path(moviesFile))
}

func (s *Store) SaveMovies(movies []model.Movie) error {
	return saveCollection(s.path(moviesFile), movies)
}

// LoadScheme returns the persisted pricing scheme, or the default scheme when
// none has been saved yet.
func (s *Store) LoadScheme() (model.PriceScheme, error) {
	path := s.path(schemeFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return model.DefaultPriceScheme(), nil
	}
	return loadCollection[model.PriceScheme](path)
}

func (s *Store) SaveScheme(scheme model.PriceScheme) error {
	return saveCollection(s.path(schemeFile), scheme)
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func loadCollection[T any](path string) (T, error) {
	var envelope recordEnvelope[T]
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return envelope.Data, nil
		}
		return envelope.Data, err
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return envelope.Data, err
	}
	return envelope.Data, nil
}

func saveCollection[T any](path string, data T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	envelope := recordEnvelope[T]{
		UpdatedAt: time.Now(),
		Data:      data,
	}
	payload, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}
