package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadarch/scout/internal/agent"
	"github.com/leadarch/scout/internal/core/model"
	"github.com/leadarch/scout/internal/core/query"
	"github.com/leadarch/scout/internal/core/rank"
)

const agentResultJSON = `{
	"events": [
		{"event_title": "Future Conf", "event_date": "2025-07-01", "persona_match_score": 40},
		{"event_title": "Big Summit", "event_date": "2025-08-01", "persona_match_score": 95},
		{"event_title": "Old Meetup", "event_date": "2025-05-01", "persona_match_score": 70}
	],
	"total_events_found": 3,
	"search_summary": "Found 3 events",
	"enrichment_summary": "Enriched",
	"overall_strategy_summary": "Focus on Big Summit"
}`

func fixedScout(client agent.Client) *Scout {
	s := NewScout(client, "", nil)
	s.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func criteria() model.SearchCriteria {
	return model.SearchCriteria{Locations: []string{"San Francisco"}}
}

func TestDiscoverSplitsAndSortsEvents(t *testing.T) {
	mock := &agent.MockClient{Payload: map[string]any{
		"success":  true,
		"response": map[string]any{"result": agentResultJSON},
	}}
	s := fixedScout(mock)

	outcome, err := s.Discover(context.Background(), criteria())

	require.NoError(t, err)
	require.Len(t, outcome.Events, 2)
	assert.Equal(t, "Big Summit", outcome.Events[0].Title, "upcoming events sort by score")
	assert.Equal(t, "Future Conf", outcome.Events[1].Title)
	assert.Equal(t, 1, outcome.PastAdded)
	assert.Equal(t, 3, outcome.TotalEventsFound)
	assert.Equal(t, "Found 3 events", outcome.SearchSummary)
	assert.Equal(t, "Found 2 upcoming and 1 past events", outcome.Message)

	past := s.PastEvents(rank.ByDate)
	require.Len(t, past, 1)
	assert.Equal(t, "Old Meetup", past[0].Title)
}

func TestDiscoverAccumulatedPastIsDeduplicated(t *testing.T) {
	mock := &agent.MockClient{Payload: map[string]any{
		"success":  true,
		"response": map[string]any{"result": agentResultJSON},
	}}
	s := fixedScout(mock)

	_, err := s.Discover(context.Background(), criteria())
	require.NoError(t, err)
	outcome, err := s.Discover(context.Background(), criteria())
	require.NoError(t, err)

	assert.Equal(t, 0, outcome.PastAdded)
	assert.Len(t, s.PastEvents(rank.ByDate), 1)
}

func TestDiscoverRawTextPayload(t *testing.T) {
	// Direct LLM providers hand back fenced text instead of an envelope.
	mock := &agent.MockClient{Payload: "```json\n" + agentResultJSON + "\n```"}
	s := fixedScout(mock)

	outcome, err := s.Discover(context.Background(), criteria())

	require.NoError(t, err)
	assert.Len(t, outcome.Events, 2)
}

func TestDiscoverRejectsEmptyCriteria(t *testing.T) {
	mock := &agent.MockClient{}
	s := fixedScout(mock)

	_, err := s.Discover(context.Background(), model.SearchCriteria{})

	assert.ErrorIs(t, err, query.ErrNoCriteria)
	assert.Zero(t, mock.Calls, "no agent call may happen without criteria")
}

func TestDiscoverPendingInputAloneTriggersSearch(t *testing.T) {
	mock := &agent.MockClient{Payload: agentResultJSON}
	s := fixedScout(mock)

	outcome, err := s.Discover(context.Background(), model.SearchCriteria{PersonaInput: "CTO"})

	require.NoError(t, err)
	assert.Equal(t, []string{"CTO"}, outcome.Criteria.Personas)
	assert.Empty(t, outcome.Criteria.PersonaInput)
}

func TestDiscoverEnvelopeFailureSurfacesAgentError(t *testing.T) {
	mock := &agent.MockClient{Payload: map[string]any{
		"success": false,
		"error":   "agent quota exceeded",
	}}
	s := fixedScout(mock)

	_, err := s.Discover(context.Background(), criteria())

	var agentErr *AgentError
	require.ErrorAs(t, err, &agentErr)
	assert.Equal(t, "agent quota exceeded", agentErr.Message)
}

func TestDiscoverEnvelopeFailureWithoutMessageUsesDefault(t *testing.T) {
	mock := &agent.MockClient{Payload: map[string]any{"success": false}}
	s := fixedScout(mock)

	_, err := s.Discover(context.Background(), criteria())

	var agentErr *AgentError
	require.ErrorAs(t, err, &agentErr)
	assert.Equal(t, "Failed to discover events. Please try again.", agentErr.Message)
}

func TestDiscoverTransportFailure(t *testing.T) {
	mock := &agent.MockClient{Err: errors.New("connection refused")}
	s := fixedScout(mock)

	_, err := s.Discover(context.Background(), criteria())

	require.Error(t, err)
	assert.False(t, s.Searching(), "loading state must reset on error paths")
}

func TestDiscoverExtractionExhaustedIsNotAnError(t *testing.T) {
	mock := &agent.MockClient{Payload: map[string]any{
		"success":  true,
		"response": map[string]any{"result": "no structured data here"},
	}}
	s := fixedScout(mock)

	outcome, err := s.Discover(context.Background(), criteria())

	require.NoError(t, err)
	assert.Empty(t, outcome.Events)
	assert.Equal(t, NoEventsMessage, outcome.Message)
	assert.False(t, s.Searching())
}

type blockingClient struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingClient) Invoke(ctx context.Context, message string) (any, error) {
	close(b.entered)
	<-b.release
	return map[string]any{"events": []any{}}, nil
}

func TestDiscoverSecondSubmissionWhileInFlight(t *testing.T) {
	client := &blockingClient{entered: make(chan struct{}), release: make(chan struct{})}
	s := fixedScout(client)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.Discover(context.Background(), criteria())
	}()

	<-client.entered
	_, err := s.Discover(context.Background(), criteria())
	assert.ErrorIs(t, err, ErrSearchInFlight)

	close(client.release)
	<-done
	assert.False(t, s.Searching())
}

func TestPastEventsSortOrders(t *testing.T) {
	s := fixedScout(&agent.MockClient{})
	s.past = []model.Event{
		{Title: "older", Date: "2024-09-05", PersonaMatchScore: 90},
		{Title: "newer", Date: "2024-11-12", PersonaMatchScore: 40},
	}

	byDate := s.PastEvents(rank.ByDate)
	assert.Equal(t, "newer", byDate[0].Title)

	byScore := s.PastEvents(rank.ByScore)
	assert.Equal(t, "older", byScore[0].Title)
}
