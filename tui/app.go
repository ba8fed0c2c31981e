// Package tui is the interactive booking flow: pick a movie, pick a showtime,
// pick seats on the hall grid, pick a ticket tier and confirm. Prices shown on
// the tier screen already have the peak overrides applied, so the estimate a
// customer sees is the price they are charged.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"cineplex-booking-cli/model"
	"cineplex-booking-cli/service"
)

type appState int

const (
	stateEnterCustomer appState = iota
	stateSelectMovie
	stateSelectShowtime
	stateSelectSeats
	stateSelectTier
	stateConfirm
	stateReceipt
	stateError
)

type appModel struct {
	app *service.App

	state     appState
	lastState appState
	err       error

	width  int
	height int

	customerInput textinput.Model
	movieList     list.Model
	showtimeList  list.Model
	tierList      list.Model

	customerID string
	movie      model.Movie
	showtime   model.Showtime
	cursor     model.Seat
	selected   map[model.Seat]bool
	tier       model.TicketType
	total      decimal.Decimal

	booking model.Booking
}

func New(app *service.App) tea.Model {
	m := appModel{
		app:      app,
		state:    stateEnterCustomer,
		selected: make(map[model.Seat]bool),
	}

	input := textinput.New()
	input.Placeholder = "your email"
	input.Focus()
	input.CharLimit = 64
	m.customerInput = input

	m.movieList = newList("Select Movie")
	m.showtimeList = newList("Select Showtime")
	m.tierList = newList("Select Ticket")
	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}
		m = next
	}

	var cmd tea.Cmd
	switch m.state {
	case stateEnterCustomer:
		m.customerInput, cmd = m.customerInput.Update(msg)
	case stateSelectMovie:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateSelectShowtime:
		m.showtimeList, cmd = m.showtimeList.Update(msg)
	case stateSelectTier:
		m.tierList, cmd = m.tierList.Update(msg)
	}
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "esc":
		next, cmd := m.goBack()
		return next, cmd, true
	}

	switch m.state {
	case stateEnterCustomer:
		if msg.String() == "enter" {
			customer := strings.TrimSpace(m.customerInput.Value())
			if customer == "" {
				return m, nil, true
			}
			m.customerID = customer
			return m.openMovieList(), nil, true
		}
	case stateSelectMovie:
		if msg.String() == "enter" {
			item, ok := m.movieList.SelectedItem().(movieItem)
			if !ok {
				return m, nil, true
			}
			m.movie = item.movie
			return m.openShowtimeList(), nil, true
		}
	case stateSelectShowtime:
		if msg.String() == "enter" {
			item, ok := m.showtimeList.SelectedItem().(showtimeItem)
			if !ok {
				return m, nil, true
			}
			m.showtime = item.showtime
			m.cursor = model.Seat{}
			m.selected = make(map[model.Seat]bool)
			m.state = stateSelectSeats
			return m, nil, true
		}
	case stateSelectSeats:
		return m.handleSeatKey(msg), nil, true
	case stateSelectTier:
		if msg.String() == "enter" {
			item, ok := m.tierList.SelectedItem().(tierItem)
			if !ok {
				return m, nil, true
			}
			m.tier = item.tier
			m.total = item.unit.Mul(decimal.NewFromInt(int64(len(m.selected))))
			m.state = stateConfirm
			return m, nil, true
		}
	case stateConfirm:
		switch msg.String() {
		case "y", "enter":
			return m.commitBooking()
		case "n":
			next, cmd := m.goBack()
			return next, cmd, true
		}
	case stateReceipt:
		if msg.String() == "enter" || msg.String() == "q" {
			return m, tea.Quit, true
		}
	case stateError:
		if msg.String() == "enter" {
			m.state = m.lastState
			m.err = nil
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m appModel) handleSeatKey(msg tea.KeyMsg) appModel {
	rows := len(m.showtime.Seats)
	cols := 0
	if rows > 0 {
		cols = len(m.showtime.Seats[0])
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor.Row > 0 {
			m.cursor.Row--
		}
	case "down", "j":
		if m.cursor.Row < rows-1 {
			m.cursor.Row++
		}
	case "left", "h":
		if m.cursor.Col > 0 {
			m.cursor.Col--
		}
	case "right", "l":
		if m.cursor.Col < cols-1 {
			m.cursor.Col++
		}
	case " ", "x":
		if m.showtime.Seats.Available(m.cursor) {
			if m.selected[m.cursor] {
				delete(m.selected, m.cursor)
			} else {
				m.selected[m.cursor] = true
			}
		}
	case "enter":
		if len(m.selected) > 0 {
			return m.openTierList()
		}
	}
	return m
}

func (m appModel) openMovieList() appModel {
	m.movieList.SetItems(buildMovieItems(m.app))
	m.state = stateSelectMovie
	return m
}

func (m appModel) openShowtimeList() appModel {
	m.showtimeList.SetItems(buildShowtimeItems(m.app, m.movie.ID))
	m.state = stateSelectShowtime
	return m
}

func (m appModel) openTierList() appModel {
	m.tierList.SetItems(buildTierItems(m.app, m.movie, m.showtime))
	m.state = stateSelectTier
	return m
}

// commitBooking runs the booking transaction. The coordinator re-checks seat
// availability inside its own critical section, so losing a race here simply
// surfaces as an error screen.
func (m appModel) commitBooking() (appModel, tea.Cmd, bool) {
	seats := make([]model.Seat, 0, len(m.selected))
	for r := 0; r < len(m.showtime.Seats); r++ {
		for c := 0; c < len(m.showtime.Seats[r]); c++ {
			if m.selected[model.Seat{Row: r, Col: c}] {
				seats = append(seats, model.Seat{Row: r, Col: c})
			}
		}
	}

	booking, err := m.app.Bookings.Create(m.customerID, m.showtime.ID, seats, m.tier)
	if err != nil {
		m.err = err
		m.lastState = stateSelectSeats
		m.state = stateError
		// Refresh the grid: another session may have taken the seats.
		if fresh, ferr := m.app.Showtimes.Get(m.showtime.ID); ferr == nil {
			m.showtime = fresh
			m.selected = make(map[model.Seat]bool)
		}
		return m, nil, true
	}
	m.booking = booking
	m.state = stateReceipt
	return m, nil, true
}

func (m appModel) goBack() (appModel, tea.Cmd) {
	switch m.state {
	case stateSelectMovie:
		m.state = stateEnterCustomer
	case stateSelectShowtime:
		m.state = stateSelectMovie
	case stateSelectSeats:
		m.state = stateSelectShowtime
	case stateSelectTier:
		m.state = stateSelectSeats
	case stateConfirm:
		m.state = stateSelectTier
	case stateError:
		m.state = m.lastState
		m.err = nil
	default:
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateEnterCustomer:
		return header + "\n\nWho is booking?\n\n" + m.customerInput.View() + "\n\n" + hint("Press enter to continue, ctrl+c to quit.")
	case stateSelectMovie:
		return header + "\n\n" + m.movieList.View()
	case stateSelectShowtime:
		return header + "\n\n" + m.showtimeList.View()
	case stateSelectSeats:
		return header + "\n\n" + m.renderSeatGrid() + "\n" + hint("Arrows move, space toggles a seat, enter continues, esc goes back.")
	case stateSelectTier:
		return header + "\n\n" + m.tierList.View()
	case stateConfirm:
		return header + "\n\n" + m.confirmView()
	case stateReceipt:
		return header + "\n\n" + m.receiptView()
	case stateError:
		return header + "\n\n" + errStyle.Render(m.err.Error()) + "\n\n" + hint("Press enter to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := titleStyle.Render("Cineplex Booking")
	var sub []string
	if m.customerID != "" {
		sub = append(sub, "Customer: "+m.customerID)
	}
	if m.movie.Title != "" && m.state >= stateSelectShowtime {
		sub = append(sub, "Movie: "+m.movie.Title)
	}
	if m.showtime.ID != "" && m.state >= stateSelectSeats {
		sub = append(sub, "Showtime: "+m.showtime.Datetime.Format("2006-01-02 15:04"))
	}
	if len(m.selected) > 0 && m.state >= stateSelectTier {
		sub = append(sub, fmt.Sprintf("Seats: %d", len(m.selected)))
	}
	if len(sub) == 0 {
		return title
	}
	return title + "\n" + hint(strings.Join(sub, " | "))
}

func (m appModel) confirmView() string {
	var b strings.Builder
	b.WriteString("Confirm booking?\n\n")
	b.WriteString(fmt.Sprintf("  Movie:  %s\n", m.movie.Title))
	b.WriteString(fmt.Sprintf("  When:   %s\n", m.showtime.Datetime.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("  Seats:  %s\n", strings.Join(m.selectedLabels(), ", ")))
	b.WriteString(fmt.Sprintf("  Tier:   %s\n", m.tier))
	b.WriteString(fmt.Sprintf("  Total:  %s\n", m.total.StringFixed(2)))
	b.WriteString("\n")
	b.WriteString(hint("Press y to book, n to go back."))
	return b.String()
}

func (m appModel) receiptView() string {
	labels := make([]string, len(m.booking.Seats))
	for i, seat := range m.booking.Seats {
		labels[i] = model.SeatLabel(seat)
	}
	var b strings.Builder
	b.WriteString(okStyle.Render("Booked!"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Transaction: %s\n", m.booking.TransactionID))
	b.WriteString(fmt.Sprintf("  Booked at:   %s\n", m.booking.CreatedAt.Format(time.RFC822)))
	b.WriteString(fmt.Sprintf("  Seats:       %s\n", strings.Join(labels, ", ")))
	b.WriteString(fmt.Sprintf("  Tier:        %s\n", m.booking.TicketType))
	b.WriteString(fmt.Sprintf("  Total:       %s\n", m.booking.TotalPrice.StringFixed(2)))
	b.WriteString("\n")
	b.WriteString(hint("Press enter to exit."))
	return b.String()
}

func (m appModel) selectedLabels() []string {
	var labels []string
	for r := 0; r < len(m.showtime.Seats); r++ {
		for c := 0; c < len(m.showtime.Seats[r]); c++ {
			if m.selected[model.Seat{Row: r, Col: c}] {
				labels = append(labels, model.SeatLabel(model.Seat{Row: r, Col: c}))
			}
		}
	}
	return labels
}

func (m *appModel) resizeLists() {
	height := m.height - 6
	if height < 5 {
		height = 5
	}
	for _, l := range []*list.Model{&m.movieList, &m.showtimeList, &m.tierList} {
		l.SetSize(m.width, height)
	}
}

func newList(title string) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return l
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func hint(text string) string {
	return hintStyle.Render(text)
}
