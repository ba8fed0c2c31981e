package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cineplex-booking-cli/model"
)

func TestCinemaAddBatch_AssignsSequentialIDs(t *testing.T) {
	app := newTestApp(t)

	first, err := app.Cinemas.AddBatch("jwc", model.ClassNormal, model.ClassPremium)
	assert.NoError(t, err)
	if assert.Len(t, first, 2) {
		assert.Equal(t, 1, first[0].ID)
		assert.Equal(t, 2, first[1].ID)
		assert.Equal(t, "JWC", first[0].CineplexCode, "code is upper-cased")
	}

	second, err := app.Cinemas.AddBatch("GVC", model.ClassNormal)
	assert.NoError(t, err)
	assert.Equal(t, 3, second[0].ID)
}

func TestCinemaAddBatch_RejectsBadCode(t *testing.T) {
	app := newTestApp(t)

	_, err := app.Cinemas.AddBatch("TOOLONG", model.ClassNormal)
	assert.Error(t, err)
	_, err = app.Cinemas.AddBatch("A1", model.ClassNormal)
	assert.Error(t, err)
	_, err = app.Cinemas.AddBatch("", model.ClassNormal)
	assert.Error(t, err)
	_, err = app.Cinemas.AddBatch("JWC")
	assert.Error(t, err, "a batch needs at least one class")
}

func TestCinemaRemove_GuardedByUpcomingBookings(t *testing.T) {
	app := newTestApp(t)
	future := fixedNow.Add(48 * time.Hour)
	showtime := seedShowtime(t, app, future)
	_, err := app.Bookings.Create("cust-1", showtime.ID, []model.Seat{{Row: 0, Col: 0}}, model.TicketNonPeak)
	assert.NoError(t, err)

	assert.ErrorIs(t, app.Cinemas.Remove(showtime.CinemaID), ErrImmutable)
}

func TestCinemaRemove_PastBookingsDoNotBlock(t *testing.T) {
	app := newTestApp(t)
	past := fixedNow.Add(-48 * time.Hour)
	showtime := seedShowtime(t, app, past)
	_, err := app.Bookings.Create("cust-1", showtime.ID, []model.Seat{{Row: 0, Col: 0}}, model.TicketNonPeak)
	assert.NoError(t, err)

	assert.NoError(t, app.Cinemas.Remove(showtime.CinemaID))
	_, err = app.Cinemas.Get(showtime.CinemaID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, app.Showtimes.ByCinema(showtime.CinemaID))
}

func TestCinemaRemove_UnknownID(t *testing.T) {
	app := newTestApp(t)
	assert.ErrorIs(t, app.Cinemas.Remove(42), ErrNotFound)
}
