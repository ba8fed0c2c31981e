package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SeatLabel renders a seat the way tickets print it: row letter plus 1-based
// column, so {0,0} is "A1".
func SeatLabel(seat Seat) string {
	return fmt.Sprintf("%c%d", 'A'+seat.Row, seat.Col+1)
}

// ParseSeatLabel parses "A1"-style labels. Row letters beyond 'Z' are not a
// thing in any real hall.
func ParseSeatLabel(label string) (Seat, error) {
	label = strings.ToUpper(strings.TrimSpace(label))
	if len(label) < 2 || label[0] < 'A' || label[0] > 'Z' {
		return Seat{}, fmt.Errorf("invalid seat label %q", label)
	}
	col, err := strconv.Atoi(label[1:])
	if err != nil || col < 1 {
		return Seat{}, fmt.Errorf("invalid seat label %q", label)
	}
	return Seat{Row: int(label[0] - 'A'), Col: col - 1}, nil
}

// ParseSeatList parses a comma-separated list of seat labels.
func ParseSeatList(input string) ([]Seat, error) {
	var seats []Seat
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		seat, err := ParseSeatLabel(part)
		if err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}
	return seats, nil
}
