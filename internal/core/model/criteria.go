package model

// SearchCriteria holds the three committed chip lists plus the three pending
// free-text buffers that have not been committed yet. A pending buffer is
// folded into its list when a search is assembled.
type SearchCriteria struct {
	Locations []string `json:"location"`
	Personas  []string `json:"persona"`
	Domains   []string `json:"domain"`

	LocationInput string `json:"location_input,omitempty"`
	PersonaInput  string `json:"persona_input,omitempty"`
	DomainInput   string `json:"domain_input,omitempty"`
}

// Empty reports whether no committed term exists in any list.
func (c SearchCriteria) Empty() bool {
	return len(c.Locations) == 0 && len(c.Personas) == 0 && len(c.Domains) == 0
}
