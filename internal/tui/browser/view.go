package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/gcal/internal/output"
	"github.com/marcus/gcal/internal/timeline"
)

// View implements tea.Model
func (m Model) View() string {
	if m.Width > 0 && (m.Width < MinWidth || m.Height < MinHeight) {
		return fmt.Sprintf("Terminal too small (need at least %dx%d)", MinWidth, MinHeight)
	}
	if m.ShowHelp {
		return m.renderHelp()
	}

	body := m.renderBody()
	footer := m.renderFooter()
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m Model) renderBody() string {
	height := m.bodyHeight()

	if m.Layout.Fullscreen {
		if m.Layout.Focused == ComponentDetail {
			return m.renderDetail(m.contentWidth(), height)
		}
		return m.renderTimeline(m.contentWidth(), height)
	}

	leftWidth := m.contentWidth() / 2
	rightWidth := m.contentWidth() - leftWidth
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderTimeline(leftWidth, height),
		m.renderDetail(rightWidth, height),
	)
}

// renderTimeline draws the dense day list with the cursor kept in view.
func (m Model) renderTimeline(width, height int) string {
	style := panelStyle
	if m.Layout.Focused == ComponentTimeline {
		style = activePanelStyle
	}
	inner := height - 3 // border + title
	if inner < 1 {
		inner = 1
	}

	start := m.Cursor - inner/2
	if start > len(m.Timeline.Items)-inner {
		start = len(m.Timeline.Items) - inner
	}
	if start < 0 {
		start = 0
	}

	today := timeline.Today()
	var rows []string
	for i := start; i < len(m.Timeline.Items) && len(rows) < inner; i++ {
		rows = append(rows, m.renderRow(i, today, width-4))
	}

	title := panelTitleStyle.Render("Timeline")
	if m.Filter != "" {
		title = panelTitleStyle.Render("Timeline /" + m.Filter)
	}
	content := title + "\n" + strings.Join(rows, "\n")
	return style.Width(width - 2).Height(height - 2).Render(content)
}

func (m Model) renderRow(i int, today timeline.Date, width int) string {
	item := m.Timeline.Items[i]

	dStyle := dateStyle
	switch {
	case item.Date == today:
		dStyle = todayStyle
	case item.Date.IsWeekend():
		dStyle = weekendStyle
	}
	day := dStyle.Render(fmt.Sprintf("%s %s", item.Date, item.Date.Weekday().String()[:3]))

	var text string
	switch {
	case item.Event == nil:
		text = day + emptyDayStyle.Render("  -")
	case !item.FirstDay:
		text = day + contStyle.Render("  ("+item.Event.Summary+")")
	default:
		e := item.Event
		var clock string
		if e.IsAllDay() {
			clock = "all-day"
		} else {
			clock = e.Start.Format("15:04") + "-" + e.End.Format("15:04")
		}
		text = fmt.Sprintf("%s  %s %s %s", day, clock, e.Summary, calNameStyle.Render("["+e.CalendarName+"]"))
	}

	if lipgloss.Width(text) > width {
		text = lipgloss.NewStyle().MaxWidth(width).Render(text)
	}
	if i == m.Cursor {
		return selectedStyle.Render("> ") + text
	}
	return "  " + text
}

// renderDetail draws the selected event's details with the description
// rendered as markdown.
func (m Model) renderDetail(width, height int) string {
	style := panelStyle
	if m.Layout.Focused == ComponentDetail {
		style = activePanelStyle
	}

	var body string
	e := m.selectedEvent()
	if e == nil {
		body = emptyDayStyle.Render("No event on " + m.currentDate().String())
	} else {
		var when string
		if e.IsAllDay() {
			when = timeline.DateOf(e.Start).String() + " (all day)"
		} else {
			when = e.Start.Format("2006-01-02 15:04") + " - " + e.End.Format("2006-01-02 15:04") +
				" (" + output.FormatDuration(*e) + ")"
		}
		parts := []string{
			lipgloss.NewStyle().Bold(true).Render(e.Summary),
			when,
			calNameStyle.Render(e.CalendarName),
		}
		if e.Description != "" {
			parts = append(parts, "", renderMarkdown(e.Description, width-6))
		}
		body = strings.Join(parts, "\n")
	}

	content := panelTitleStyle.Render("Event") + "\n" + body
	return style.Width(width - 2).Height(height - 2).Render(content)
}

func (m Model) renderFooter() string {
	if m.Prompt != promptNone {
		label := "jump: "
		if m.Prompt == promptFind {
			label = "find: "
		}
		return statusStyle.Render(label) + m.Input.View()
	}

	left := m.Status
	if m.Err != nil {
		left = errStyle.Render(m.Err.Error())
	}
	if m.Syncing {
		left = "Syncing..."
	}
	help := helpStyle.Render(fmt.Sprintf("%s/%s move  %s today  %s jump  %s find  %s sync  %s full  %s help  %s quit",
		m.keys.keyFor(actionDown), m.keys.keyFor(actionUp), m.keys.keyFor(actionToday),
		m.keys.keyFor(actionJump), m.keys.keyFor(actionFind), m.keys.keyFor(actionSync),
		m.keys.keyFor(actionFullscreen), m.keys.keyFor(actionHelp), m.keys.keyFor(actionQuit)))
	gap := m.contentWidth() - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + help
}

func (m Model) renderHelp() string {
	k := m.keys.keyFor
	entry := func(keys, what string) string {
		return fmt.Sprintf("  %-24s %s", keys, what)
	}
	rows := []string{
		panelTitleStyle.Render("Calendar browser keys"),
		"",
		entry(k(actionDown)+" / "+k(actionUp)+", ctrl+d / ctrl+u", "move through days"),
		entry(k(actionToday), "jump to today"),
		entry(k(actionNextWeek)+" / "+k(actionPrevWeek), "next / previous week"),
		entry(k(actionNextMonth)+" / "+k(actionPrevMonth), "next / previous month"),
		entry(k(actionNextYear)+" / "+k(actionPrevYear), "next / previous year"),
		entry(k(actionJump), "jump to a date (2026-03-01, 3/1, nw, lm, +10d)"),
		entry(k(actionFind), "filter events by keyword or M/D date"),
		entry("esc", "clear filter / leave fullscreen"),
		entry(k(actionSync), "sync subscribed calendars"),
		entry("tab", "switch panel focus"),
		entry(k(actionFullscreen), "toggle fullscreen panel"),
		entry(k(actionQuit), "quit"),
		"",
		helpStyle.Render("press " + k(actionHelp) + " to close"),
	}
	return strings.Join(rows, "\n")
}

func (m Model) contentWidth() int {
	if m.Width > 0 {
		return m.Width
	}
	return 80
}

func (m Model) bodyHeight() int {
	if m.Height > 2 {
		return m.Height - 1 // footer line
	}
	return 24
}
