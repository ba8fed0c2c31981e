package model

// Seat addresses one position in a showtime's grid, zero-based.
type Seat struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SeatGrid is a rectangular availability matrix. true means the seat is free.
type SeatGrid [][]bool

// NewSeatGrid returns a fully available rows x cols grid.
func NewSeatGrid(rows, cols int) SeatGrid {
	grid := make(SeatGrid, rows)
	for r := range grid {
		grid[r] = make([]bool, cols)
		for c := range grid[r] {
			grid[r][c] = true
		}
	}
	return grid
}

// InBounds reports whether the seat lies inside the grid. Callers must check
// this before any assignment; Assign itself does not.
func (g SeatGrid) InBounds(seat Seat) bool {
	return seat.Row >= 0 && seat.Row < len(g) && seat.Col >= 0 && seat.Col < len(g[seat.Row])
}

// Available reports whether the seat is free. Out-of-bounds seats read as taken.
func (g SeatGrid) Available(seat Seat) bool {
	return g.InBounds(seat) && g[seat.Row][seat.Col]
}

// Assign marks a single seat. makeUnavailable=true books it, false releases it.
// The seat must already be validated with InBounds.
func (g SeatGrid) Assign(seat Seat, makeUnavailable bool) {
	g[seat.Row][seat.Col] = !makeUnavailable
}

// BulkAssign applies Assign to every seat. Writes are unconditional; the
// caller is responsible for verifying availability first, there is no rollback.
func (g SeatGrid) BulkAssign(seats []Seat, makeUnavailable bool) {
	for _, seat := range seats {
		g.Assign(seat, makeUnavailable)
	}
}

func (g SeatGrid) CountAvailable() int {
	count := 0
	for _, row := range g {
		for _, free := range row {
			if free {
				count++
			}
		}
	}
	return count
}

func (g SeatGrid) CountTotal() int {
	count := 0
	for _, row := range g {
		count += len(row)
	}
	return count
}

// Clone returns an independent copy of the grid.
func (g SeatGrid) Clone() SeatGrid {
	if g == nil {
		return nil
	}
	clone := make(SeatGrid, len(g))
	for r, row := range g {
		clone[r] = make([]bool, len(row))
		copy(clone[r], row)
	}
	return clone
}
