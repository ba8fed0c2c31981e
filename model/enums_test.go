package model

import "testing"

func TestParseTicketType(t *testing.T) {
	cases := map[string]TicketType{
		"STUDENT":    TicketStudent,
		"student":    TicketStudent,
		" non_peak ": TicketNonPeak,
		"Super_Peak": TicketSuperPeak,
	}
	for input, want := range cases {
		got, err := ParseTicketType(input)
		if err != nil {
			t.Fatalf("expected nil error for %q, got %v", input, err)
		}
		if got != want {
			t.Fatalf("expected %q to parse as %s, got %s", input, want, got)
		}
	}
}

func TestParseTicketType_RejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "ADULT", "PEAKISH", "NONPEAK"} {
		if _, err := ParseTicketType(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}
