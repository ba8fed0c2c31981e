package model

import "testing"

func TestSeatLabelRoundTrip(t *testing.T) {
	cases := []struct {
		seat  Seat
		label string
	}{
		{Seat{Row: 0, Col: 0}, "A1"},
		{Seat{Row: 1, Col: 7}, "B8"},
		{Seat{Row: 4, Col: 11}, "E12"},
	}
	for _, tc := range cases {
		if got := SeatLabel(tc.seat); got != tc.label {
			t.Fatalf("expected label %q, got %q", tc.label, got)
		}
		seat, err := ParseSeatLabel(tc.label)
		if err != nil {
			t.Fatalf("expected nil error for %q, got %v", tc.label, err)
		}
		if seat != tc.seat {
			t.Fatalf("expected seat %+v for %q, got %+v", tc.seat, tc.label, seat)
		}
	}
}

func TestParseSeatLabel_Normalizes(t *testing.T) {
	seat, err := ParseSeatLabel("  b3 ")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if seat != (Seat{Row: 1, Col: 2}) {
		t.Fatalf("expected B3 to parse as {1 2}, got %+v", seat)
	}
}

func TestParseSeatLabel_Rejects(t *testing.T) {
	for _, label := range []string{"", "A", "1A", "A0", "Ax", "99"} {
		if _, err := ParseSeatLabel(label); err == nil {
			t.Fatalf("expected error for %q", label)
		}
	}
}

func TestParseSeatList(t *testing.T) {
	seats, err := ParseSeatList("A1, B2,,C3")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	want := []Seat{{0, 0}, {1, 1}, {2, 2}}
	if len(seats) != len(want) {
		t.Fatalf("expected %d seats, got %d", len(want), len(seats))
	}
	for i := range want {
		if seats[i] != want[i] {
			t.Fatalf("expected seat %+v at %d, got %+v", want[i], i, seats[i])
		}
	}

	if _, err := ParseSeatList("A1,bogus"); err == nil {
		t.Fatal("expected error for malformed list")
	}
}
