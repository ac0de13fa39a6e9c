package classify

import (
	"time"

	"github.com/leadarch/scout/internal/core/model"
)

// Split partitions events into upcoming and past relative to today. An event
// is past iff its date is non-empty and lexicographically before today's
// YYYY-MM-DD form; the comparison is valid only because dates are ISO
// formatted. Dateless events count as upcoming.
func Split(events []model.Event, today time.Time) (upcoming, past []model.Event) {
	cutoff := today.Format("2006-01-02")
	for _, e := range events {
		if e.Date != "" && e.Date < cutoff {
			past = append(past, e)
		} else {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming, past
}
