package browser

import "testing"

func TestViewStateTransitions(t *testing.T) {
	var s ViewState
	if s.Fullscreen || s.Focused != ComponentTimeline {
		t.Fatalf("zero value should be split with timeline focus: %+v", s)
	}

	s = s.ToggleFullscreen()
	if !s.Fullscreen {
		t.Error("toggle should enter fullscreen")
	}

	s = s.Focus(ComponentDetail)
	if !s.Fullscreen || s.Focused != ComponentDetail {
		t.Errorf("focusing while fullscreen should keep fullscreen: %+v", s)
	}

	s = s.Split()
	if s.Fullscreen {
		t.Error("Split should leave fullscreen")
	}
	if s.Focused != ComponentDetail {
		t.Error("Split should not move focus")
	}

	s = s.ToggleFullscreen().ToggleFullscreen()
	if s.Fullscreen {
		t.Error("double toggle should return to split")
	}
}
