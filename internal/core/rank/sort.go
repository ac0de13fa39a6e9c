package rank

import (
	"sort"

	"github.com/leadarch/scout/internal/core/model"
)

// SortKey selects the ordering field for an event list.
type SortKey string

const (
	ByScore SortKey = "score" // persona match score, always descending
	ByDate  SortKey = "date"  // ISO date, direction chosen by the view
)

type Direction string

const (
	Ascending  Direction = "asc"  // discovery view: soonest first, dateless last
	Descending Direction = "desc" // past view: most recent first
)

// Sort returns a newly ordered copy of events. Ordering is stable: ties keep
// their relative input order. Unknown keys fall back to score.
func Sort(events []model.Event, by SortKey, dir Direction) []model.Event {
	out := make([]model.Event, len(events))
	copy(out, events)

	less := func(a, b model.Event) bool {
		return a.PersonaMatchScore > b.PersonaMatchScore
	}
	if by == ByDate {
		if dir == Descending {
			less = func(a, b model.Event) bool { return a.Date > b.Date }
		} else {
			less = func(a, b model.Event) bool {
				// Empty dates sort last under ascending order.
				if (a.Date == "") != (b.Date == "") {
					return b.Date == ""
				}
				return a.Date < b.Date
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
