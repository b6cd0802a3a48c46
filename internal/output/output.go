// Package output provides styled terminal output helpers (success,
// error, warning, event formatting) using lipgloss.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/marcus/gcal/internal/models"
	"github.com/marcus/gcal/internal/timeline"
)

var (
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true)
	weekendStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	calendarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// termWidth returns the terminal width, defaulting to 80 when stdout is
// not a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// DateHeading formats a day heading like "2026-03-01 Sun", weekend days
// highlighted.
func DateHeading(d timeline.Date) string {
	text := fmt.Sprintf("%s %s", d, d.Weekday().String()[:3])
	if d.IsWeekend() {
		return weekendStyle.Render(text)
	}
	return dateStyle.Render(text)
}

// EventLine formats one event row under its day heading.
func EventLine(e models.Event) string {
	var timeRange string
	if e.IsAllDay() {
		timeRange = "all-day    "
	} else {
		timeRange = fmt.Sprintf("%s-%s %s",
			e.Start.Format("15:04"), e.End.Format("15:04"), FormatDuration(e))
	}

	line := fmt.Sprintf("  %s  %s %s",
		subtleStyle.Render(timeRange),
		e.Summary,
		calendarStyle.Render("["+e.CalendarName+"]"))

	if w := termWidth(); lipgloss.Width(line) > w {
		line = truncate(line, w)
	}
	return line
}

// Agenda prints the events falling in [from, from+days) grouped by day,
// skipping empty days.
func Agenda(items []timeline.Item, from timeline.Date, days int) {
	to := from.AddDays(days)
	var currentDay timeline.Date
	printed := 0

	for _, item := range items {
		if item.Date.Before(from) || !item.Date.Before(to) || item.Event == nil {
			continue
		}
		if item.Date != currentDay {
			currentDay = item.Date
			fmt.Println(DateHeading(currentDay))
		}
		if item.FirstDay {
			fmt.Println(EventLine(*item.Event))
		} else {
			fmt.Println(subtleStyle.Render("  (cont.)    ") + "  " + item.Event.Summary)
		}
		printed++
	}

	if printed == 0 {
		Info("No events between %s and %s.", from, to.AddDays(-1))
	}
}

// CycleLine is one calendar's sync outcome for display.
type CycleLine struct {
	Name     string
	Upserted int
	Deleted  int
	Full     bool
	Err      error
}

// SyncSummary prints one line per calendar cycle result.
func SyncSummary(results []CycleLine) {
	for _, r := range results {
		switch {
		case r.Err != nil:
			Error("%s: %v", r.Name, r.Err)
		case r.Full:
			Success("%s: full resync, %d events (%d removed)", r.Name, r.Upserted, r.Deleted)
		default:
			Success("%s: %d changed, %d removed", r.Name, r.Upserted, r.Deleted)
		}
	}
}

func truncate(s string, width int) string {
	if width <= 3 {
		return s
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		if w >= width-3 {
			b.WriteString("...")
			break
		}
		b.WriteRune(r)
		w++
	}
	return b.String()
}

// FormatDuration renders an event length compactly ("45m", "2h", "3d").
func FormatDuration(e models.Event) string {
	d := e.End.Sub(e.Start)
	switch {
	case d >= 24*time.Hour:
		return fmt.Sprintf("%dd", int(d/(24*time.Hour)))
	case d >= time.Hour:
		return fmt.Sprintf("%dh%02dm", int(d/time.Hour), int(d%time.Hour/time.Minute))
	default:
		return fmt.Sprintf("%dm", int(d/time.Minute))
	}
}
