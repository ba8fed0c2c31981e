package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/shopspring/decimal"

	"cineplex-booking-cli/model"
	"cineplex-booking-cli/service"
)

type movieItem struct {
	movie     model.Movie
	showtimes int
}

func (i movieItem) Title() string { return i.movie.Title }

func (i movieItem) Description() string {
	parts := []string{string(i.movie.Status)}
	if i.movie.Blockbuster {
		parts = append(parts, "blockbuster")
	}
	parts = append(parts, fmt.Sprintf("%d showtimes", i.showtimes))
	return strings.Join(parts, " | ")
}

func (i movieItem) FilterValue() string { return i.movie.Title }

type showtimeItem struct {
	showtime model.Showtime
	cinema   model.Cinema
}

func (i showtimeItem) Title() string {
	return i.showtime.Datetime.Format("Mon 2006-01-02 15:04")
}

func (i showtimeItem) Description() string {
	return fmt.Sprintf("%s hall %d (%s, %s) | %d seats free",
		i.cinema.CineplexCode, i.cinema.ID, i.cinema.Class, i.showtime.ShowType,
		i.showtime.Seats.CountAvailable())
}

func (i showtimeItem) FilterValue() string { return i.Title() }

type tierItem struct {
	tier   model.TicketType
	unit   decimal.Decimal
	forced bool
}

func (i tierItem) Title() string {
	return fmt.Sprintf("%s  %s per seat", i.tier, i.unit.StringFixed(2))
}

func (i tierItem) Description() string {
	if i.forced {
		return "this slot always prices at this tier"
	}
	return ""
}

func (i tierItem) FilterValue() string { return string(i.tier) }

func buildMovieItems(app *service.App) []list.Item {
	var items []list.Item
	for _, movie := range app.Movies.List() {
		if movie.Status == model.StatusEndOfShowing {
			continue
		}
		items = append(items, movieItem{movie: movie, showtimes: len(app.Showtimes.ByMovie(movie.ID))})
	}
	return items
}

func buildShowtimeItems(app *service.App, movieID int) []list.Item {
	var items []list.Item
	for _, showtime := range app.Showtimes.ByMovie(movieID) {
		cinema, err := app.Cinemas.Get(showtime.CinemaID)
		if err != nil {
			continue
		}
		items = append(items, showtimeItem{showtime: showtime, cinema: cinema})
	}
	return items
}

// buildTierItems resolves the slot's tier first. When the slot forces a peak
// tier there is exactly one entry; otherwise the concession tiers are offered
// and the requested tier passes through.
func buildTierItems(app *service.App, movie model.Movie, showtime model.Showtime) []list.Item {
	cinema, err := app.Cinemas.Get(showtime.CinemaID)
	if err != nil {
		return nil
	}

	unit := func(tier model.TicketType) decimal.Decimal {
		return app.Pricing.UnitPrice(movie.Blockbuster, showtime.ShowType, cinema.Class, tier, showtime.Datetime)
	}

	resolved := app.Pricing.ResolveTier(showtime.Datetime, model.TicketNonPeak)
	if resolved != model.TicketNonPeak {
		return []list.Item{tierItem{tier: resolved, unit: unit(resolved), forced: true}}
	}

	var items []list.Item
	for _, tier := range []model.TicketType{model.TicketNonPeak, model.TicketStudent, model.TicketSenior} {
		items = append(items, tierItem{tier: tier, unit: unit(tier)})
	}
	return items
}
