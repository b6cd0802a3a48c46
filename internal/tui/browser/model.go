package browser

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/gcal/internal/dateparse"
	"github.com/marcus/gcal/internal/db"
	"github.com/marcus/gcal/internal/models"
	"github.com/marcus/gcal/internal/sync"
	"github.com/marcus/gcal/internal/timeline"
	"github.com/marcus/gcal/internal/version"
)

// promptKind says what the command-line input is currently collecting.
type promptKind int

const (
	promptNone promptKind = iota
	promptJump
	promptFind
)

// SyncProvider builds the synchronizer on demand. Construction may
// need remote credentials, so it must not run before a sync is
// actually requested; browsing the cache stays fully offline.
type SyncProvider func(ctx context.Context) (*sync.Synchronizer, error)

// Model is the main Bubble Tea model for the calendar browser TUI.
type Model struct {
	Store *db.Store
	Sync  SyncProvider

	// Events is the owned container for the in-memory event set; the
	// timeline below is always a projection of its current contents
	// (possibly narrowed by Filter).
	Events *models.EventSet

	Timeline timeline.Timeline
	Index    *timeline.Index
	Cursor   int
	Ref      timeline.Date // reference date of the current projection

	// UI state
	Layout   ViewState
	Input    textinput.Model
	Prompt   promptKind
	Filter   string
	Status   string
	Syncing  bool
	ShowHelp bool
	Width    int
	Height   int
	Err      error

	// Version enables the background update check when set to a release
	// version.
	Version string

	keys keymap
}

// MinWidth is the minimum terminal width for proper display
const MinWidth = 40

// MinHeight is the minimum terminal height for proper display
const MinHeight = 10

// syncDoneMsg carries per-calendar sync results.
type syncDoneMsg struct {
	results []sync.CycleResult
}

// eventsReloadedMsg carries the event set re-read from the store.
type eventsReloadedMsg struct {
	events []models.Event
	err    error
}

// NewModel creates a browser model projected around today. The
// bindings map rebinds actions by name (from settings); nil keeps the
// defaults.
func NewModel(store *db.Store, provider SyncProvider, events []models.Event, bindings map[string]string) Model {
	input := textinput.New()
	input.CharLimit = 32
	input.Width = 24

	m := Model{
		Store:  store,
		Sync:   provider,
		Events: models.NewEventSet(events),
		Input:  input,
		keys:   newKeymap(bindings),
	}
	m.reproject(timeline.Today(), timeline.Today())
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.Version != "" && !version.IsDevelopmentVersion(m.Version) {
		return version.CheckAsync(m.Version)
	}
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case syncDoneMsg:
		m.Syncing = false
		m.Status = syncStatus(msg.results)
		return m, m.reloadEvents()

	case version.UpdateAvailableMsg:
		m.Status = "Update available: " + msg.LatestVersion
		return m, nil

	case eventsReloadedMsg:
		if msg.err != nil {
			m.Err = msg.err
			return m, nil
		}
		m.Events.Replace(msg.events)
		current := m.currentDate()
		m.reproject(current, current)
		return m, nil
	}

	return m, nil
}

// handleKey processes key input. Fixed chords are matched first, then
// the key resolves to an action through the (possibly rebound) keymap.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Prompt != promptNone {
		return m.handlePromptKey(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "down":
		return m.moveCursor(1), nil
	case "up":
		return m.moveCursor(-1), nil

	case "ctrl+d":
		m.Cursor = min(m.Cursor+m.pageSize()/2, len(m.Timeline.Items)-1)
		return m, nil

	case "ctrl+u":
		m.Cursor = max(m.Cursor-m.pageSize()/2, 0)
		return m, nil

	case "esc":
		if m.Filter != "" {
			m.Filter = ""
			current := m.currentDate()
			m.reproject(current, current)
			m.Status = "Filter cleared"
		} else if m.Layout.Fullscreen {
			m.Layout = m.Layout.Split()
		}
		return m, nil

	case "tab":
		if m.Layout.Focused == ComponentTimeline {
			m.Layout = m.Layout.Focus(ComponentDetail)
		} else {
			m.Layout = m.Layout.Focus(ComponentTimeline)
		}
		return m, nil
	}

	switch m.keys.action(msg.String()) {
	case actionQuit:
		return m, tea.Quit

	case actionDown:
		return m.moveCursor(1), nil
	case actionUp:
		return m.moveCursor(-1), nil

	case actionToday:
		return m.jumpTo("today")
	case actionNextWeek:
		return m.jumpTo("nw")
	case actionPrevWeek:
		return m.jumpTo("lw")
	case actionNextMonth:
		return m.jumpTo("nm")
	case actionPrevMonth:
		return m.jumpTo("lm")
	case actionNextYear:
		return m.jumpTo("ny")
	case actionPrevYear:
		return m.jumpTo("ly")

	case actionJump:
		m.Prompt = promptJump
		m.Input.Placeholder = "date or nw/lw/nm/lm/ny/ly"
		m.Input.SetValue("")
		m.Input.Focus()
		return m, textinput.Blink

	case actionFind:
		m.Prompt = promptFind
		m.Input.Placeholder = "find"
		m.Input.SetValue(m.Filter)
		m.Input.Focus()
		return m, textinput.Blink

	case actionSync:
		if m.Syncing {
			return m, nil
		}
		if m.Sync == nil {
			m.Status = "Sync not configured"
			return m, nil
		}
		m.Syncing = true
		m.Status = "Syncing..."
		return m, m.runSync()

	case actionFullscreen:
		m.Layout = m.Layout.ToggleFullscreen()
		return m, nil

	case actionHelp:
		m.ShowHelp = !m.ShowHelp
		return m, nil
	}

	return m, nil
}

func (m Model) moveCursor(delta int) Model {
	next := m.Cursor + delta
	if next >= 0 && next < len(m.Timeline.Items) {
		m.Cursor = next
	}
	return m
}

// handlePromptKey routes keys while the command line is open.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Prompt = promptNone
		m.Input.Blur()
		return m, nil

	case "enter":
		value := m.Input.Value()
		kind := m.Prompt
		m.Prompt = promptNone
		m.Input.Blur()
		if kind == promptJump {
			return m.jumpTo(value)
		}
		return m.applyFilter(value), nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// jumpTo resolves a jump token against the selected date and moves the
// cursor, reprojecting when the target falls outside the current
// window.
func (m Model) jumpTo(token string) (tea.Model, tea.Cmd) {
	target, err := dateparse.ParseJump(token, m.currentDate(), time.Now())
	if err != nil {
		m.Status = err.Error()
		return m, nil
	}

	if target.Before(m.Timeline.Start) || target.After(m.Timeline.End) {
		m.reproject(target, target)
	} else {
		m.Cursor = m.Index.Locate(target)
	}
	m.Status = "Jumped to " + target.String()
	return m, nil
}

// applyFilter narrows the projected events to those matching keyword.
func (m Model) applyFilter(keyword string) Model {
	m.Filter = keyword
	current := m.currentDate()
	m.reproject(current, current)
	if keyword == "" {
		m.Status = "Filter cleared"
	} else {
		m.Status = "Filtering: " + keyword
	}
	return m
}

// reproject rebuilds the timeline around ref and positions the cursor
// at target. The navigation index is rebuilt with the timeline; a stale
// index is never reused.
func (m *Model) reproject(ref, target timeline.Date) {
	events := m.Events.Current()
	if m.Filter != "" {
		events = m.Events.Filter(func(e models.Event) bool { return e.Matches(m.Filter) })
	}
	m.Timeline = timeline.Project(events, ref)
	m.Index = timeline.NewIndex(m.Timeline)
	m.Ref = ref
	m.Cursor = m.Index.Locate(target)
}

// currentDate returns the date of the row under the cursor.
func (m Model) currentDate() timeline.Date {
	if m.Cursor >= 0 && m.Cursor < len(m.Timeline.Items) {
		return m.Timeline.Items[m.Cursor].Date
	}
	return timeline.Today()
}

// selectedEvent returns the event under the cursor, nil on empty days.
func (m Model) selectedEvent() *models.Event {
	if m.Cursor >= 0 && m.Cursor < len(m.Timeline.Items) {
		return m.Timeline.Items[m.Cursor].Event
	}
	return nil
}

func (m Model) pageSize() int {
	if m.Height > 4 {
		return m.Height - 4
	}
	return 10
}

// runSync returns a command that syncs all subscribed calendars. The
// synchronizer is built here, on first use, so credentials are only
// needed once a sync is requested.
func (m Model) runSync() tea.Cmd {
	store, provider := m.Store, m.Sync
	return func() tea.Msg {
		ctx := context.Background()
		synchronizer, err := provider(ctx)
		if err != nil {
			return syncDoneMsg{results: []sync.CycleResult{{Err: err}}}
		}
		calendars, err := store.FetchCalendars()
		if err != nil {
			return syncDoneMsg{results: []sync.CycleResult{{Err: err}}}
		}
		return syncDoneMsg{results: synchronizer.SyncAll(ctx, calendars)}
	}
}

// reloadEvents re-reads the cached events for subscribed calendars.
func (m Model) reloadEvents() tea.Cmd {
	store := m.Store
	return func() tea.Msg {
		calendars, err := store.FetchCalendars()
		if err != nil {
			return eventsReloadedMsg{err: err}
		}
		ids := make([]string, len(calendars))
		for i, c := range calendars {
			ids[i] = c.ID
		}
		events, err := store.FetchEvents(ids)
		return eventsReloadedMsg{events: events, err: err}
	}
}

func syncStatus(results []sync.CycleResult) string {
	var failed int
	var changed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		changed += r.Upserted + r.Deleted
	}
	switch {
	case failed > 0:
		return "Sync finished with errors"
	case changed == 0:
		return "Sync complete, no changes"
	default:
		return "Sync complete"
	}
}
