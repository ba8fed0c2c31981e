package service

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"cineplex-booking-cli/model"
	"cineplex-booking-cli/store"
)

// Catalog is the movie lookup the booking coordinator depends on. Only the
// blockbuster flag and the show status matter to the core.
type Catalog interface {
	Movie(id int) (model.Movie, error)
}

// MovieService is a store-backed Catalog with the staff-side list/add
// operations. Metadata ingestion from external catalogs is out of scope.
type MovieService struct {
	gate   *sync.Mutex
	store  *store.Store
	log    *zap.Logger
	movies []model.Movie
}

var _ Catalog = (*MovieService)(nil)

// Add registers a movie and returns it with its assigned id.
func (s *MovieService) Add(title string, blockbuster bool, status model.ShowStatus) (model.Movie, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	nextID := 1
	for _, movie := range s.movies {
		if movie.ID >= nextID {
			nextID = movie.ID + 1
		}
	}
	movie := model.Movie{ID: nextID, Title: title, Blockbuster: blockbuster, Status: status}

	s.movies = append(s.movies, movie)
	if err := s.store.SaveMovies(s.movies); err != nil {
		s.movies = s.movies[:len(s.movies)-1]
		return model.Movie{}, err
	}
	s.log.Info("movie added", zap.Int("id", movie.ID), zap.String("title", title))
	return movie, nil
}

// SetStatus moves a movie through its release lifecycle.
func (s *MovieService) SetStatus(id int, status model.ShowStatus) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	for i := range s.movies {
		if s.movies[i].ID == id {
			previous := s.movies[i].Status
			s.movies[i].Status = status
			if err := s.store.SaveMovies(s.movies); err != nil {
				s.movies[i].Status = previous
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("movie %d: %w", id, ErrNotFound)
}

// Movie returns a copy of the movie.
func (s *MovieService) Movie(id int) (model.Movie, error) {
	s.gate.Lock()
	defer s.gate.Unlock()
	return s.movieLocked(id)
}

// List returns every movie.
func (s *MovieService) List() []model.Movie {
	s.gate.Lock()
	defer s.gate.Unlock()

	result := make([]model.Movie, len(s.movies))
	copy(result, s.movies)
	return result
}

func (s *MovieService) movieLocked(id int) (model.Movie, error) {
	for _, movie := range s.movies {
		if movie.ID == id {
			return movie, nil
		}
	}
	return model.Movie{}, fmt.Errorf("movie %d: %w", id, ErrNotFound)
}
