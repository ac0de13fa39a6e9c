package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/leadarch/scout/internal/agent"
	"github.com/leadarch/scout/internal/core/classify"
	"github.com/leadarch/scout/internal/core/dedupe"
	"github.com/leadarch/scout/internal/core/extract"
	"github.com/leadarch/scout/internal/core/model"
	"github.com/leadarch/scout/internal/core/query"
	"github.com/leadarch/scout/internal/core/rank"
)

// ErrSearchInFlight rejects a discover call while a previous one is still
// awaiting the agent. The design assumes one search in flight at a time.
var ErrSearchInFlight = errors.New("a discovery search is already in progress")

// AgentError carries the agent's own failure message through to the caller
// verbatim.
type AgentError struct {
	Message string
}

func (e *AgentError) Error() string { return e.Message }

// NoEventsMessage is the caller-facing line for an exhausted extraction: a
// response arrived but no envelope field yielded events.
const NoEventsMessage = "No events found. Try broadening your search criteria."

// DiscoveryOutcome is what one completed search hands to the UI layer:
// upcoming events (score-sorted), the agent's narrative summaries, the
// committed criteria, and how many past events were folded into the
// accumulated set.
type DiscoveryOutcome struct {
	Criteria               model.SearchCriteria `json:"criteria"`
	Events                 []model.Event        `json:"events"`
	PastAdded              int                  `json:"past_added"`
	TotalEventsFound       int                  `json:"total_events_found"`
	SearchSummary          string               `json:"search_summary"`
	EnrichmentSummary      string               `json:"enrichment_summary"`
	OverallStrategySummary string               `json:"overall_strategy_summary"`
	Message                string               `json:"message"`
}

// Scout orchestrates one discovery round trip: assemble criteria, call the
// agent, dig the result out of whatever envelope came back, split it into
// upcoming and past, and fold past events into the accumulated set.
type Scout struct {
	Agent    agent.Client
	logger   *zap.Logger
	template string
	now      func() time.Time

	mu        sync.Mutex
	searching bool
	past      []model.Event
}

func NewScout(agentClient agent.Client, promptTemplate string, logger *zap.Logger) *Scout {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scout{
		Agent:    agentClient,
		logger:   logger,
		template: promptTemplate,
		now:      time.Now,
	}
}

func (s *Scout) Discover(ctx context.Context, criteria model.SearchCriteria) (*DiscoveryOutcome, error) {
	committed, err := query.Assemble(criteria)
	if err != nil {
		return nil, err
	}

	if !s.beginSearch() {
		return nil, ErrSearchInFlight
	}
	defer s.endSearch()

	searchesTotal.Inc()
	message := query.BuildMessage(s.template, committed)
	s.logger.Info("invoking discovery agent",
		zap.Strings("locations", committed.Locations),
		zap.Strings("personas", committed.Personas),
		zap.Strings("domains", committed.Domains))

	payload, err := s.Agent.Invoke(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("agent call failed: %w", err)
	}

	if agentErr := envelopeFailure(payload); agentErr != nil {
		return nil, agentErr
	}

	result, ok := extract.ExtractFirst(extract.Sources(payload)...)
	if !ok {
		extractionFailures.Inc()
		s.logger.Info("extraction exhausted all envelope sources")
		return &DiscoveryOutcome{Criteria: committed, Message: NoEventsMessage}, nil
	}

	upcoming, past := classify.Split(result.Events, s.now())
	pastAdded := s.accumulatePast(past)
	eventsDiscovered.Add(float64(len(result.Events)))

	outcome := &DiscoveryOutcome{
		Criteria:               committed,
		Events:                 rank.Sort(upcoming, rank.ByScore, rank.Descending),
		PastAdded:              pastAdded,
		TotalEventsFound:       result.TotalEventsFound,
		SearchSummary:          result.SearchSummary,
		EnrichmentSummary:      result.EnrichmentSummary,
		OverallStrategySummary: result.OverallStrategySummary,
		Message:                foundMessage(len(upcoming), pastAdded),
	}
	return outcome, nil
}

// PastEvents returns the accumulated past-event set ordered for the past
// view: most recent first unless the caller asks for score order.
func (s *Scout) PastEvents(by rank.SortKey) []model.Event {
	s.mu.Lock()
	past := make([]model.Event, len(s.past))
	copy(past, s.past)
	s.mu.Unlock()

	if by == rank.ByScore {
		return rank.Sort(past, rank.ByScore, rank.Descending)
	}
	return rank.Sort(past, rank.ByDate, rank.Descending)
}

func (s *Scout) Searching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searching
}

func (s *Scout) beginSearch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.searching {
		return false
	}
	s.searching = true
	return true
}

func (s *Scout) endSearch() {
	s.mu.Lock()
	s.searching = false
	s.mu.Unlock()
}

func (s *Scout) accumulatePast(past []model.Event) int {
	if len(past) == 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.past)
	s.past = dedupe.MergePast(s.past, past)
	return len(s.past) - before
}

// envelopeFailure inspects a platform envelope for an explicit failure flag.
// Payloads without a success field (raw LLM text) pass through.
func envelopeFailure(payload any) error {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	success, ok := obj["success"].(bool)
	if !ok || success {
		return nil
	}
	msg, _ := obj["error"].(string)
	if msg == "" {
		msg = "Failed to discover events. Please try again."
	}
	return &AgentError{Message: msg}
}

func foundMessage(upcoming, past int) string {
	if past > 0 {
		return fmt.Sprintf("Found %d upcoming and %d past events", upcoming, past)
	}
	return fmt.Sprintf("Found %d upcoming events", upcoming)
}
