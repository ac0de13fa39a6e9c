package pipeline

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/leadarch/scout/internal/core/model"
	"github.com/leadarch/scout/internal/store"
)

// SlotKey is the fixed durable key the full pipeline is persisted under.
const SlotKey = "leadgen-pipeline"

// Store owns the tracked-event pipeline. Every mutation rewrites the whole
// serialized entry list into the durable slot before returning; persistence
// failures keep the in-memory state authoritative for the session.
type Store struct {
	mu      sync.Mutex
	entries []model.PipelineEntry
	slot    store.Slot
	logger  *zap.Logger
	now     func() time.Time
}

func NewStore(slot store.Slot, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		slot:   slot,
		logger: logger,
		now:    time.Now,
	}
}

// Load reads the persisted pipeline. A missing or unparsable blob degrades to
// an empty pipeline rather than an error; corrupt local state must never
// prevent startup.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, ok, err := s.slot.Get(SlotKey)
	if err != nil {
		s.logger.Warn("failed to read pipeline slot, starting empty", zap.Error(err))
		s.entries = nil
		return
	}
	if !ok {
		s.entries = nil
		return
	}

	var entries []model.PipelineEntry
	if err := json.Unmarshal(blob, &entries); err != nil {
		s.logger.Warn("pipeline slot is corrupt, starting empty", zap.Error(err))
		s.entries = nil
		return
	}
	s.entries = entries
}

// Track adds an event to the pipeline with status Saved. Tracking an event
// whose (title, date) pair is already present is a no-op.
func (s *Store) Track(event model.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(event.Key()) >= 0 {
		return false
	}

	s.entries = append(s.entries, model.PipelineEntry{
		Event:     event,
		UUID:      uuid.New().String(),
		Status:    model.StatusSaved,
		TrackedAt: s.now().UTC(),
	})
	s.persist()
	return true
}

// SetStatus replaces the status of the entry at index. Out-of-range indices
// and unknown statuses are no-ops.
func (s *Store) SetStatus(index int, status model.PipelineStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) || !model.ValidStatus(status) {
		return false
	}
	s.entries[index].Status = status
	s.persist()
	return true
}

// SetStatusByKey replaces the status of the entry matching the identity key.
func (s *Store) SetStatusByKey(key model.Key, status model.PipelineStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(key)
	if i < 0 || !model.ValidStatus(status) {
		return false
	}
	s.entries[i].Status = status
	s.persist()
	return true
}

// IsTracked reports membership by (title, date).
func (s *Store) IsTracked(event model.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(event.Key()) >= 0
}

// Entries returns a copy of the pipeline in tracking order.
func (s *Store) Entries() []model.PipelineEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.PipelineEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Organizations lists the unique non-empty organization names in the
// pipeline, in first-seen order. Feeds the pipeline filter dropdown.
func (s *Store) Organizations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[string]struct{}{}
	var out []string
	for _, e := range s.entries {
		if e.OrganizationName == "" {
			continue
		}
		if _, dup := seen[e.OrganizationName]; dup {
			continue
		}
		seen[e.OrganizationName] = struct{}{}
		out = append(out, e.OrganizationName)
	}
	return out
}

// FilterByOrganization returns entries whose organization name contains the
// query, case-insensitively. An empty query returns everything.
func (s *Store) FilterByOrganization(query string) []model.PipelineEntry {
	if query == "" {
		return s.Entries()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	var out []model.PipelineEntry
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.OrganizationName), q) {
			out = append(out, e)
		}
	}
	return out
}

// Columns groups entries by status in the fixed display order of the
// outreach board.
func (s *Store) Columns() map[model.PipelineStatus][]model.PipelineEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[model.PipelineStatus][]model.PipelineEntry, len(model.PipelineColumns))
	for _, col := range model.PipelineColumns {
		out[col] = []model.PipelineEntry{}
	}
	for _, e := range s.entries {
		out[e.Status] = append(out[e.Status], e)
	}
	return out
}

func (s *Store) indexOf(key model.Key) int {
	for i, e := range s.entries {
		if e.Key() == key {
			return i
		}
	}
	return -1
}

// persist rewrites the full entry list. Callers hold the lock.
func (s *Store) persist() {
	blob, err := json.Marshal(s.entries)
	if err != nil {
		s.logger.Warn("failed to serialize pipeline", zap.Error(err))
		return
	}
	if err := s.slot.Put(SlotKey, blob); err != nil {
		s.logger.Warn("failed to persist pipeline, in-memory state remains authoritative", zap.Error(err))
	}
}
