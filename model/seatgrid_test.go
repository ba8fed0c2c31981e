package model

import "testing"

func TestNewSeatGrid_FullyAvailable(t *testing.T) {
	grid := NewSeatGrid(5, 8)
	if grid.CountTotal() != 40 {
		t.Fatalf("expected 40 seats, got %d", grid.CountTotal())
	}
	if grid.CountAvailable() != 40 {
		t.Fatalf("expected all seats available, got %d", grid.CountAvailable())
	}
}

func TestSeatGrid_AssignAndRelease(t *testing.T) {
	grid := NewSeatGrid(3, 4)
	seat := Seat{Row: 1, Col: 2}

	grid.Assign(seat, true)
	if grid.Available(seat) {
		t.Fatal("expected seat to be taken")
	}
	if grid.CountAvailable() != 11 {
		t.Fatalf("expected 11 available, got %d", grid.CountAvailable())
	}

	grid.Assign(seat, false)
	if !grid.Available(seat) {
		t.Fatal("expected seat to be released")
	}
}

func TestSeatGrid_BulkAssign(t *testing.T) {
	grid := NewSeatGrid(3, 4)
	seats := []Seat{{Row: 0, Col: 0}, {Row: 2, Col: 3}}

	grid.BulkAssign(seats, true)
	for _, seat := range seats {
		if grid.Available(seat) {
			t.Fatalf("expected seat %+v to be taken", seat)
		}
	}
	if grid.CountAvailable()+len(seats) != grid.CountTotal() {
		t.Fatalf("seat counts do not add up: %d + %d != %d", grid.CountAvailable(), len(seats), grid.CountTotal())
	}

	grid.BulkAssign(seats, false)
	if grid.CountAvailable() != grid.CountTotal() {
		t.Fatalf("expected all seats released, got %d of %d", grid.CountAvailable(), grid.CountTotal())
	}
}

func TestSeatGrid_Bounds(t *testing.T) {
	grid := NewSeatGrid(3, 4)
	for _, seat := range []Seat{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 3, Col: 0}, {Row: 0, Col: 4}} {
		if grid.InBounds(seat) {
			t.Fatalf("expected %+v out of bounds", seat)
		}
		if grid.Available(seat) {
			t.Fatalf("expected %+v to read as unavailable", seat)
		}
	}
	if !grid.InBounds(Seat{Row: 2, Col: 3}) {
		t.Fatal("expected corner seat in bounds")
	}
}

func TestSeatGrid_CloneIsIndependent(t *testing.T) {
	grid := NewSeatGrid(2, 2)
	clone := grid.Clone()
	clone.Assign(Seat{Row: 0, Col: 0}, true)

	if !grid.Available(Seat{Row: 0, Col: 0}) {
		t.Fatal("mutating the clone must not touch the original")
	}
	if nilClone := (SeatGrid)(nil).Clone(); nilClone != nil {
		t.Fatal("expected nil clone for nil grid")
	}
}
