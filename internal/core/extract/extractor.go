package extract

import (
	"github.com/leadarch/scout/internal/core/model"
)

// Extract locates and normalizes a discovery result inside an arbitrary agent
// payload. Returns (nil, false) when no candidate carries an events array.
func Extract(raw any) (*model.DiscoveryResult, bool) {
	obj, ok := asObject(raw)
	if !ok {
		return nil, false
	}

	for _, src := range candidates(obj) {
		if !hasEventArray(src) {
			continue
		}
		return buildResult(src), true
	}
	return nil, false
}

// ExtractFirst retries extraction against successively different envelope
// fields, stopping at the first source that yields at least one event. No
// single field is guaranteed to hold the payload, so this multi-source retry
// is part of the extraction contract, not an optimization.
func ExtractFirst(sources ...any) (*model.DiscoveryResult, bool) {
	for _, src := range sources {
		if src == nil {
			continue
		}
		if result, ok := Extract(src); ok && len(result.Events) > 0 {
			return result, true
		}
	}
	return nil, false
}

// Sources expands a raw agent envelope into the ordered list of places the
// payload may live: response.result, response.message, response, raw_response,
// then the envelope itself. Non-object envelopes probe only themselves.
func Sources(raw any) []any {
	obj, ok := raw.(map[string]any)
	if !ok {
		return []any{raw}
	}
	var out []any
	if resp, ok := obj["response"].(map[string]any); ok {
		out = append(out, resp["result"], resp["message"])
	}
	out = append(out, obj["response"], obj["raw_response"], obj)
	return out
}

func buildResult(src map[string]any) *model.DiscoveryResult {
	arr := src["events"].([]any)
	events := make([]model.Event, 0, len(arr))
	for _, item := range arr {
		raw, _ := item.(map[string]any)
		events = append(events, CoerceEvent(raw))
	}

	total := intField(src, "total_events_found", len(events))
	return &model.DiscoveryResult{
		Events:                 events,
		TotalEventsFound:       total,
		SearchSummary:          stringField(src, "search_summary", ""),
		EnrichmentSummary:      stringField(src, "enrichment_summary", ""),
		OverallStrategySummary: stringField(src, "overall_strategy_summary", ""),
	}
}
