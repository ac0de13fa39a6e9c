package model

// DiscoveryResult is the structured outcome of one agent search call: the
// extracted events plus the agent's narrative summaries.
type DiscoveryResult struct {
	Events                 []Event `json:"events"`
	TotalEventsFound       int     `json:"total_events_found"`
	SearchSummary          string  `json:"search_summary"`
	EnrichmentSummary      string  `json:"enrichment_summary"`
	OverallStrategySummary string  `json:"overall_strategy_summary"`
}
