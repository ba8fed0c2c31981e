package service

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"cineplex-booking-cli/config"
	"cineplex-booking-cli/model"
	"cineplex-booking-cli/store"
)

// fixedNow is a Tuesday afternoon, outside every tier override window.
var fixedNow = time.Date(2026, 9, 8, 14, 0, 0, 0, time.Local)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Config{DataDir: t.TempDir(), GridRows: 5, GridCols: 8}
	app, err := NewApp(store.New(cfg.DataDir), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	app.Bookings.now = func() time.Time { return fixedNow }
	return app
}

// seedShowtime creates one cinema, one movie and one showtime and returns the
// showtime.
func seedShowtime(t *testing.T, app *App, datetime time.Time) model.Showtime {
	t.Helper()
	cinemas, err := app.Cinemas.AddBatch("JWC", model.ClassNormal)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	movie, err := app.Movies.Add("The Long Night", false, model.StatusNowShowing)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	showtime, err := app.Showtimes.Add(cinemas[0].ID, movie.ID, datetime, model.ShowDigital)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	return showtime
}
