package model

import "time"

// PipelineStatus is the outreach stage of a tracked event. Status moves
// freely between the four values; there is no enforced forward-only order.
type PipelineStatus string

const (
	StatusSaved     PipelineStatus = "Saved"
	StatusContacted PipelineStatus = "Contacted"
	StatusResponded PipelineStatus = "Responded"
	StatusPartnered PipelineStatus = "Partnered"
)

// PipelineColumns is the fixed display order of the outreach stages.
var PipelineColumns = []PipelineStatus{StatusSaved, StatusContacted, StatusResponded, StatusPartnered}

func ValidStatus(s PipelineStatus) bool {
	for _, c := range PipelineColumns {
		if s == c {
			return true
		}
	}
	return false
}

// PipelineEntry is a tracked event plus its outreach state. Entries are
// unique by (title, date); UUID only addresses an entry in the API.
type PipelineEntry struct {
	Event
	UUID      string         `json:"uuid"`
	Status    PipelineStatus `json:"pipeline_status"`
	TrackedAt time.Time      `json:"tracked_at"`
}
