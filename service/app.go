// Package service implements the booking core: the cinema, showtime, movie
// and settings registries, the pricing rule engine and the booking
// transaction coordinator. All registries share one mutation gate so a seat
// availability check and the matching seat assignment run as one critical
// section. Every getter returns a copy that is independent of the internal
// collections.
package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"cineplex-booking-cli/config"
	"cineplex-booking-cli/model"
	"cineplex-booking-cli/store"
)

// App bundles the wired services over one store and one mutation gate.
type App struct {
	Cinemas   *CinemaService
	Showtimes *ShowtimeService
	Movies    *MovieService
	Settings  *SettingsService
	Pricing   *PricingService
	Bookings  *BookingService
}

// NewApp hydrates every registry from the store and wires the services
// together. Seat occupancy is re-derived from the booking list rather than
// trusted from the stored grids, so a crash between the booking write and the
// showtime write cannot leave the two collections disagreeing.
func NewApp(st *store.Store, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	cinemas, err := st.LoadCinemas()
	if err != nil {
		return nil, err
	}
	showtimes, err := st.LoadShowtimes()
	if err != nil {
		return nil, err
	}
	bookings, err := st.LoadBookings()
	if err != nil {
		return nil, err
	}
	movies, err := st.LoadMovies()
	if err != nil {
		return nil, err
	}
	scheme, err := st.LoadScheme()
	if err != nil {
		return nil, err
	}

	recoverSeatOccupancy(showtimes, bookings, cfg)

	gate := &sync.Mutex{}
	app := &App{
		Cinemas:   &CinemaService{gate: gate, store: st, log: log, cinemas: cinemas},
		Showtimes: &ShowtimeService{gate: gate, store: st, log: log, showtimes: showtimes, gridRows: cfg.GridRows, gridCols: cfg.GridCols},
		Movies:    &MovieService{gate: gate, store: st, log: log, movies: movies},
		Settings:  &SettingsService{gate: gate, store: st, log: log, scheme: scheme},
		Bookings:  &BookingService{gate: gate, store: st, log: log, bookings: bookings, now: time.Now},
	}
	app.Pricing = &PricingService{settings: app.Settings}

	app.Showtimes.bookings = app.Bookings
	app.Cinemas.showtimes = app.Showtimes
	app.Cinemas.bookings = app.Bookings
	app.Bookings.showtimes = app.Showtimes
	app.Bookings.cinemas = app.Cinemas
	app.Bookings.settings = app.Settings
	app.Bookings.catalog = app.Movies

	log.Info("registries hydrated",
		zap.Int("cinemas", len(cinemas)),
		zap.Int("showtimes", len(showtimes)),
		zap.Int("bookings", len(bookings)),
		zap.Int("movies", len(movies)))
	return app, nil
}

// recoverSeatOccupancy resets every grid to fully available and replays the
// booking list over it. Grids missing from the store get the configured
// default dimensions.
func recoverSeatOccupancy(showtimes []model.Showtime, bookings []model.Booking, cfg config.Config) {
	byID := make(map[string]int, len(showtimes))
	for i := range showtimes {
		rows, cols := len(showtimes[i].Seats), 0
		if rows > 0 {
			cols = len(showtimes[i].Seats[0])
		}
		if rows == 0 || cols == 0 {
			rows, cols = cfg.GridRows, cfg.GridCols
		}
		showtimes[i].Seats = model.NewSeatGrid(rows, cols)
		byID[showtimes[i].ID] = i
	}
	for _, b := range bookings {
		i, ok := byID[b.ShowtimeID]
		if !ok {
			continue
		}
		for _, seat := range b.Seats {
			if showtimes[i].Seats.InBounds(seat) {
				showtimes[i].Seats.Assign(seat, true)
			}
		}
	}
}
