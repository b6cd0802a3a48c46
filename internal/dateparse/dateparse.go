// Package dateparse parses jump targets: relative navigation tokens and
// absolute date strings.
package dateparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/marcus/gcal/internal/timeline"
)

// ParseJump resolves a jump input to a target calendar date. Relative
// tokens move from the currently selected date; "today" and the empty
// input resolve from now.
//
// Supported inputs:
//   - "" or "today": today's date
//   - "nw"/"lw": next/last week, "2w": two weeks ahead
//   - "nm"/"lm": next/last month
//   - "ny"/"ly": next/last year
//   - "+Nd", "-Nd": N days ahead/back from the selection
//   - Exact dates: "2026-03-01", "2026/3/1", "3/1" (selection's year)
func ParseJump(input string, selected timeline.Date, now time.Time) (timeline.Date, error) {
	input = strings.TrimSpace(strings.ToLower(input))

	switch input {
	case "", "today":
		return timeline.DateOf(now), nil
	case "nw":
		return selected.AddDays(7), nil
	case "lw":
		return selected.AddDays(-7), nil
	case "2w":
		return selected.AddDays(14), nil
	case "nm":
		return selected.AddMonths(1), nil
	case "lm":
		return selected.AddMonths(-1), nil
	case "ny":
		return selected.AddYears(1), nil
	case "ly":
		return selected.AddYears(-1), nil
	}

	// Relative day offsets: +Nd / -Nd
	if len(input) >= 3 && (input[0] == '+' || input[0] == '-') && input[len(input)-1] == 'd' {
		if n, err := strconv.Atoi(input[1 : len(input)-1]); err == nil {
			if input[0] == '-' {
				n = -n
			}
			return selected.AddDays(n), nil
		}
	}

	return parseAbsolute(input, selected.Year)
}

// parseAbsolute handles explicit date forms. A month/day pair without a
// year stays within the given year.
func parseAbsolute(input string, year int) (timeline.Date, error) {
	for _, layout := range []string{"2006-01-02", "2006/1/2"} {
		if t, err := time.Parse(layout, input); err == nil {
			return timeline.DateOf(t), nil
		}
	}

	parts := strings.FieldsFunc(input, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) == 2 {
		month, errM := strconv.Atoi(parts[0])
		day, errD := strconv.Atoi(parts[1])
		if errM == nil && errD == nil && month >= 1 && month <= 12 && day >= 1 {
			// time.Date normalizes overflow (2/31 becomes 3/2); a date
			// that round-trips unchanged actually exists in that month.
			t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			if t.Month() == time.Month(month) && t.Day() == day {
				return timeline.DateOf(t), nil
			}
		}
	}

	return timeline.Date{}, fmt.Errorf("unrecognized date: %q", input)
}
