package timeline

import "sort"

// Index resolves calendar dates to positions in one Timeline. It is
// built once per projection and must be rebuilt whenever the timeline
// is reprojected; positions from a stale index are meaningless.
type Index struct {
	items []Item
	first map[Date]int
}

// NewIndex builds a date-to-position index over the timeline.
func NewIndex(tl Timeline) *Index {
	ix := &Index{items: tl.Items, first: make(map[Date]int, len(tl.Items))}
	for i, item := range tl.Items {
		if _, seen := ix.first[item.Date]; !seen {
			ix.first[item.Date] = i
		}
	}
	return ix
}

// Locate returns the position of the first item on the target date.
// Dates before the window resolve to 0, dates after it to the last
// valid position; Locate never fails.
func (ix *Index) Locate(target Date) int {
	if len(ix.items) == 0 {
		return 0
	}
	if pos, ok := ix.first[target]; ok {
		return pos
	}
	// First item strictly after the target; item dates are
	// non-decreasing so binary search applies.
	pos := sort.Search(len(ix.items), func(i int) bool {
		return ix.items[i].Date.After(target)
	})
	if pos == len(ix.items) {
		return len(ix.items) - 1
	}
	return pos
}
