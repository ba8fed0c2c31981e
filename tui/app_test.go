package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"cineplex-booking-cli/config"
	"cineplex-booking-cli/model"
	"cineplex-booking-cli/service"
	"cineplex-booking-cli/store"
)

func newTestModel(t *testing.T) (appModel, *service.App, model.Showtime) {
	t.Helper()
	cfg := config.Config{DataDir: t.TempDir(), GridRows: 3, GridCols: 4}
	app, err := service.NewApp(store.New(cfg.DataDir), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	cinemas, err := app.Cinemas.AddBatch("JWC", model.ClassNormal)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	movie, err := app.Movies.Add("The Long Night", false, model.StatusNowShowing)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	// A Tuesday matinee, so no tier override applies.
	showtime, err := app.Showtimes.Add(cinemas[0].ID, movie.ID, time.Date(2026, 9, 8, 14, 0, 0, 0, time.Local), model.ShowDigital)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	m := New(app).(appModel)
	m.customerID = "alice@example.com"
	m.movie = movie
	m.showtime = showtime
	return m, app, showtime
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestSeatKeys_MoveAndToggle(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.state = stateSelectSeats

	m = m.handleSeatKey(key("l"))
	m = m.handleSeatKey(key("j"))
	if m.cursor != (model.Seat{Row: 1, Col: 1}) {
		t.Fatalf("expected cursor at B2, got %+v", m.cursor)
	}

	m = m.handleSeatKey(key(" "))
	if !m.selected[model.Seat{Row: 1, Col: 1}] {
		t.Fatal("expected seat to be selected")
	}
	m = m.handleSeatKey(key(" "))
	if m.selected[model.Seat{Row: 1, Col: 1}] {
		t.Fatal("expected seat to be deselected")
	}
}

func TestSeatKeys_CursorStaysInBounds(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.state = stateSelectSeats

	for i := 0; i < 10; i++ {
		m = m.handleSeatKey(key("l"))
	}
	if m.cursor.Col != 3 {
		t.Fatalf("expected cursor clamped to last column, got %d", m.cursor.Col)
	}
}

func TestSeatKeys_OccupiedSeatNotSelectable(t *testing.T) {
	m, app, showtime := newTestModel(t)
	if _, err := app.Bookings.Create("bob", showtime.ID, []model.Seat{{Row: 0, Col: 0}}, model.TicketNonPeak); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	fresh, err := app.Showtimes.Get(showtime.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	m.showtime = fresh
	m.state = stateSelectSeats

	m = m.handleSeatKey(key(" "))
	if len(m.selected) != 0 {
		t.Fatal("expected occupied seat to stay unselected")
	}
}

func TestTierItems_FreeSlotOffersConcessions(t *testing.T) {
	m, app, _ := newTestModel(t)

	items := buildTierItems(app, m.movie, m.showtime)
	if len(items) != 3 {
		t.Fatalf("expected 3 tier choices, got %d", len(items))
	}
}

func TestTierItems_WeekendSlotForcesSuperPeak(t *testing.T) {
	m, app, showtime := newTestModel(t)
	sunday := time.Date(2026, 9, 6, 15, 0, 0, 0, time.Local)
	if err := app.Showtimes.Update(showtime.ID, service.ShowtimeUpdate{Datetime: &sunday}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	fresh, err := app.Showtimes.Get(showtime.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	items := buildTierItems(app, m.movie, fresh)
	if len(items) != 1 {
		t.Fatalf("expected a single forced tier, got %d", len(items))
	}
	item := items[0].(tierItem)
	if item.tier != model.TicketSuperPeak || !item.forced {
		t.Fatalf("expected forced SUPER_PEAK, got %+v", item)
	}
}

func TestRenderSeatGrid_MarksOccupancy(t *testing.T) {
	m, app, showtime := newTestModel(t)
	if _, err := app.Bookings.Create("bob", showtime.ID, []model.Seat{{Row: 0, Col: 0}}, model.TicketNonPeak); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	fresh, err := app.Showtimes.Get(showtime.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	m.showtime = fresh
	m.selected[model.Seat{Row: 1, Col: 1}] = true
	m.state = stateSelectSeats

	out := m.renderSeatGrid()
	if !strings.Contains(out, "XX") {
		t.Fatal("expected an occupied marker in the grid")
	}
	if !strings.Contains(out, "**") {
		t.Fatal("expected a selected marker in the grid")
	}
	if !strings.Contains(out, "SCREEN") {
		t.Fatal("expected the screen bar")
	}
	if !strings.Contains(out, "Available: 10") {
		t.Fatalf("expected 10 available seats in counts, got:\n%s", out)
	}
}

func TestConfirmKey_CreatesBooking(t *testing.T) {
	m, app, _ := newTestModel(t)
	m.selected[model.Seat{Row: 0, Col: 0}] = true
	m.tier = model.TicketNonPeak
	m.state = stateConfirm

	next, _, handled := m.handleKey(key("y"))
	if !handled {
		t.Fatal("expected confirm key to be handled")
	}
	if next.state != stateReceipt {
		t.Fatalf("expected receipt state, got %d", next.state)
	}
	if len(app.Bookings.List()) != 1 {
		t.Fatalf("expected one booking, got %d", len(app.Bookings.List()))
	}
}
