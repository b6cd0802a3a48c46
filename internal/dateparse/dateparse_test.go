package dateparse

import (
	"testing"
	"time"

	"github.com/marcus/gcal/internal/timeline"
)

func TestParseJump(t *testing.T) {
	selected := timeline.Date{Year: 2024, Month: time.June, Day: 15}
	now := time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  timeline.Date
	}{
		{"", timeline.Date{Year: 2024, Month: time.July, Day: 1}},
		{"today", timeline.Date{Year: 2024, Month: time.July, Day: 1}},
		{"TODAY", timeline.Date{Year: 2024, Month: time.July, Day: 1}},
		{"nw", timeline.Date{Year: 2024, Month: time.June, Day: 22}},
		{"lw", timeline.Date{Year: 2024, Month: time.June, Day: 8}},
		{"2w", timeline.Date{Year: 2024, Month: time.June, Day: 29}},
		{"nm", timeline.Date{Year: 2024, Month: time.July, Day: 15}},
		{"lm", timeline.Date{Year: 2024, Month: time.May, Day: 15}},
		{"ny", timeline.Date{Year: 2025, Month: time.June, Day: 15}},
		{"ly", timeline.Date{Year: 2023, Month: time.June, Day: 15}},
		{"+10d", timeline.Date{Year: 2024, Month: time.June, Day: 25}},
		{"-20d", timeline.Date{Year: 2024, Month: time.May, Day: 26}},
		{"2026-03-01", timeline.Date{Year: 2026, Month: time.March, Day: 1}},
		{"2026/3/1", timeline.Date{Year: 2026, Month: time.March, Day: 1}},
		{"3/1", timeline.Date{Year: 2024, Month: time.March, Day: 1}},
		{"12/31", timeline.Date{Year: 2024, Month: time.December, Day: 31}},
		{"  nw  ", timeline.Date{Year: 2024, Month: time.June, Day: 22}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseJump(tt.input, selected, now)
			if err != nil {
				t.Fatalf("ParseJump(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseJump(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseJump_Invalid(t *testing.T) {
	selected := timeline.Date{Year: 2024, Month: time.June, Day: 15}
	now := time.Now()

	for _, input := range []string{"gibberish", "13/1", "3/40", "xd", "+d"} {
		if _, err := ParseJump(input, selected, now); err == nil {
			t.Errorf("ParseJump(%q): expected error", input)
		}
	}
}

func TestParseJump_NonexistentDays(t *testing.T) {
	now := time.Now()

	leap := timeline.Date{Year: 2024, Month: time.June, Day: 15}
	if got, err := ParseJump("2/29", leap, now); err != nil {
		t.Errorf("2/29 in a leap year: %v", err)
	} else if got != (timeline.Date{Year: 2024, Month: time.February, Day: 29}) {
		t.Errorf("2/29 in a leap year: got %s", got)
	}

	// Days that would silently normalize into the next month must be
	// rejected, not moved.
	nonLeap := timeline.Date{Year: 2023, Month: time.June, Day: 15}
	for _, input := range []string{"2/29", "2/31", "4/31", "6/31", "9/31", "11/31"} {
		if got, err := ParseJump(input, nonLeap, now); err == nil {
			t.Errorf("ParseJump(%q) = %s, want error for nonexistent day", input, got)
		}
	}
}
