package dedupe

import (
	"github.com/leadarch/scout/internal/core/model"
)

// MergePast folds newly discovered past events into the accumulated past-event
// set, deduplicating by (title, date). Accumulated events keep their position;
// admitted incoming events append in their original order. Merging the same
// incoming list twice is a no-op.
func MergePast(accumulated, incoming []model.Event) []model.Event {
	seen := make(map[model.Key]struct{}, len(accumulated))
	for _, e := range accumulated {
		seen[e.Key()] = struct{}{}
	}

	out := accumulated
	for _, e := range incoming {
		if _, dup := seen[e.Key()]; dup {
			continue
		}
		seen[e.Key()] = struct{}{}
		out = append(out, e)
	}
	return out
}
