package browser

// Component identifies a pane of the browser layout.
type Component int

const (
	ComponentTimeline Component = iota
	ComponentDetail
)

// ViewState is the display-mode state machine: either a split layout or
// one component fullscreen. Transitions go through the methods below so
// layout state never leaks into package globals.
type ViewState struct {
	Fullscreen bool
	Focused    Component
}

// ToggleFullscreen flips between split and fullscreen on the focused
// component.
func (s ViewState) ToggleFullscreen() ViewState {
	s.Fullscreen = !s.Fullscreen
	return s
}

// Focus moves focus to the given component. Leaving fullscreen is
// explicit; focusing another component while fullscreen switches which
// component fills the screen.
func (s ViewState) Focus(c Component) ViewState {
	s.Focused = c
	return s
}

// Split returns to the split layout without moving focus.
func (s ViewState) Split() ViewState {
	s.Fullscreen = false
	return s
}
