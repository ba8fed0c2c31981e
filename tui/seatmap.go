package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cineplex-booking-cli/model"
)

var (
	seatStyleAvailable = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatStyleOccupied  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	seatStyleSelected  = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	seatStyleCursor    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))

	screenStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214"))
	screenBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Background(lipgloss.Color("236"))
)

func (m appModel) renderSeatGrid() string {
	rows := len(m.showtime.Seats)
	if rows == 0 || len(m.showtime.Seats[0]) == 0 {
		return "No seat data."
	}
	cols := len(m.showtime.Seats[0])
	gridWidth := cols*3 - 1

	var b strings.Builder

	screenBar := screenBarBlock(gridWidth, "SCREEN")
	b.WriteString("   ")
	b.WriteString(screenBorderStyle.Render(screenBar.top))
	b.WriteString("\n   ")
	b.WriteString(screenStyle.Render(screenBar.mid))
	b.WriteString("\n   ")
	b.WriteString(screenBorderStyle.Render(screenBar.bot))
	b.WriteString("\n\n")

	available := 0
	occupied := 0
	for r := 0; r < rows; r++ {
		label := string(rune('A' + r))
		b.WriteString(fmt.Sprintf("%2s ", label))
		for c := 0; c < cols; c++ {
			seat := model.Seat{Row: r, Col: c}
			token := "[]"
			style := seatStyleAvailable
			switch {
			case m.selected[seat]:
				token = "**"
				style = seatStyleSelected
			case m.showtime.Seats.Available(seat):
				available++
			default:
				token = "XX"
				style = seatStyleOccupied
				occupied++
			}
			if seat == m.cursor {
				style = seatStyleCursor
			}
			b.WriteString(style.Render(token))
			if c < cols-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString(fmt.Sprintf(" %s\n", label))
	}

	b.WriteString("   ")
	for c := 0; c < cols; c++ {
		b.WriteString(fmt.Sprintf("%-3d", c+1))
	}
	b.WriteString("\n\n")

	legend := "Legend: [] available • XX occupied • ** selected"
	counts := fmt.Sprintf("Available: %d • Occupied: %d • Selected: %d • Total: %d",
		available, occupied, len(m.selected), rows*cols)
	return b.String() + hint(legend) + "\n" + hint(counts)
}

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	pad := width - len(label)
	left := pad / 2
	right := pad - left
	return screenBlock{
		top: strings.Repeat("▁", width),
		mid: strings.Repeat(" ", left) + label + strings.Repeat(" ", right),
		bot: strings.Repeat("▔", width),
	}
}
