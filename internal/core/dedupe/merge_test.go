package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leadarch/scout/internal/core/model"
)

func TestMergePastSkipsDuplicates(t *testing.T) {
	accumulated := []model.Event{{Title: "A", Date: "2024-01-01"}}
	incoming := []model.Event{
		{Title: "A", Date: "2024-01-01"},
		{Title: "B", Date: "2024-02-01"},
	}

	merged := MergePast(accumulated, incoming)

	assert.Equal(t, []model.Event{
		{Title: "A", Date: "2024-01-01"},
		{Title: "B", Date: "2024-02-01"},
	}, merged)
}

func TestMergePastIsIdempotent(t *testing.T) {
	accumulated := []model.Event{{Title: "A", Date: "2024-01-01"}}
	incoming := []model.Event{
		{Title: "B", Date: "2024-02-01"},
		{Title: "C", Date: "2024-03-01"},
	}

	once := MergePast(accumulated, incoming)
	twice := MergePast(once, incoming)

	assert.Equal(t, once, twice)
}

func TestMergePastSameTitleDifferentDateIsDistinct(t *testing.T) {
	accumulated := []model.Event{{Title: "Monthly Meetup", Date: "2024-01-01"}}
	incoming := []model.Event{{Title: "Monthly Meetup", Date: "2024-02-01"}}

	merged := MergePast(accumulated, incoming)

	assert.Len(t, merged, 2)
}

func TestMergePastPreservesOrder(t *testing.T) {
	accumulated := []model.Event{
		{Title: "X", Date: "2024-05-01"},
		{Title: "Y", Date: "2024-06-01"},
	}
	incoming := []model.Event{
		{Title: "Z", Date: "2024-04-01"},
		{Title: "X", Date: "2024-05-01"},
		{Title: "W", Date: "2024-03-01"},
	}

	merged := MergePast(accumulated, incoming)

	titles := make([]string, len(merged))
	for i, e := range merged {
		titles[i] = e.Title
	}
	assert.Equal(t, []string{"X", "Y", "Z", "W"}, titles)
}
