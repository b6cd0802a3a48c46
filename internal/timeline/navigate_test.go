package timeline

import (
	"testing"
	"time"

	"github.com/marcus/gcal/internal/models"
)

func TestLocate_ExactDate(t *testing.T) {
	ref := Date{Year: 2024, Month: time.June, Day: 1}
	tl := Project(nil, ref)
	ix := NewIndex(tl)

	target := Date{Year: 2024, Month: time.June, Day: 15}
	pos := ix.Locate(target)
	if tl.Items[pos].Date != target {
		t.Errorf("Locate(%s): got item on %s", target, tl.Items[pos].Date)
	}
}

func TestLocate_FirstItemOnBusyDay(t *testing.T) {
	ref := Date{Year: 2024, Month: time.June, Day: 1}
	d := "2024-06-15"
	events := []models.Event{
		event("a", d+"T09:00:00Z", d+"T10:00:00Z"),
		event("b", d+"T11:00:00Z", d+"T12:00:00Z"),
	}
	tl := Project(events, ref)
	ix := NewIndex(tl)

	pos := ix.Locate(Date{Year: 2024, Month: time.June, Day: 15})
	if got := tl.Items[pos]; got.Event == nil || got.Event.ID != "a" {
		t.Errorf("Locate on a busy day: got %+v, want first event of the day", got)
	}
	if pos > 0 && tl.Items[pos-1].Date == tl.Items[pos].Date {
		t.Error("Locate did not return the first position of the date")
	}
}

func TestLocate_ClampsBeforeWindow(t *testing.T) {
	ref := Date{Year: 2024, Month: time.June, Day: 1}
	ix := NewIndex(Project(nil, ref))

	if pos := ix.Locate(Date{Year: 1999, Month: time.January, Day: 1}); pos != 0 {
		t.Errorf("pre-window date: got %d, want 0", pos)
	}
}

func TestLocate_ClampsAfterWindow(t *testing.T) {
	ref := Date{Year: 2024, Month: time.June, Day: 1}
	tl := Project(nil, ref)
	ix := NewIndex(tl)

	if pos := ix.Locate(Date{Year: 2030, Month: time.January, Day: 1}); pos != len(tl.Items)-1 {
		t.Errorf("post-window date: got %d, want %d", pos, len(tl.Items)-1)
	}
}

func TestLocate_EmptyTimeline(t *testing.T) {
	ix := NewIndex(Timeline{})
	if pos := ix.Locate(Date{Year: 2024, Month: time.June, Day: 1}); pos != 0 {
		t.Errorf("empty timeline: got %d, want 0", pos)
	}
}
