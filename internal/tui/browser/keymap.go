package browser

// Actions the browser understands. The settings file may rebind any of
// them by action name; actions absent from the settings keep their
// default key. Arrow keys, esc, tab and the ctrl chords stay fixed.
const (
	actionQuit       = "quit"
	actionDown       = "down"
	actionUp         = "up"
	actionToday      = "today"
	actionNextWeek   = "next_week"
	actionPrevWeek   = "prev_week"
	actionNextMonth  = "next_month"
	actionPrevMonth  = "prev_month"
	actionNextYear   = "next_year"
	actionPrevYear   = "prev_year"
	actionJump       = "jump"
	actionFind       = "find"
	actionSync       = "sync"
	actionFullscreen = "fullscreen"
	actionHelp       = "help"
)

func defaultBindings() map[string]string {
	return map[string]string{
		actionQuit:       "q",
		actionDown:       "j",
		actionUp:         "k",
		actionToday:      "t",
		actionNextWeek:   "w",
		actionPrevWeek:   "W",
		actionNextMonth:  "m",
		actionPrevMonth:  "M",
		actionNextYear:   "y",
		actionPrevYear:   "Y",
		actionJump:       "g",
		actionFind:       "/",
		actionSync:       "s",
		actionFullscreen: "f",
		actionHelp:       "?",
	}
}

// keymap maps incoming key strings to action names.
type keymap map[string]string

// newKeymap overlays user bindings onto the defaults. Overrides naming
// unknown actions are ignored rather than rejected, so stale settings
// files keep working.
func newKeymap(overrides map[string]string) keymap {
	bindings := defaultBindings()
	for action, key := range overrides {
		if _, known := bindings[action]; known && key != "" {
			bindings[action] = key
		}
	}
	km := make(keymap, len(bindings))
	for action, key := range bindings {
		km[key] = action
	}
	return km
}

func (km keymap) action(key string) string {
	return km[key]
}

// keyFor returns the key currently bound to an action, for help text.
func (km keymap) keyFor(action string) string {
	for key, a := range km {
		if a == action {
			return key
		}
	}
	return ""
}
