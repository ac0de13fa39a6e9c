package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leadarch/scout/internal/core/model"
)

// ErrNoCriteria signals a submission with every chip list and pending buffer
// empty; no agent call may be made for it.
var ErrNoCriteria = errors.New("no search criteria provided")

// DefaultTemplate is the discovery prompt sent to the agent. The three %s
// slots receive the comma-joined location, persona, and domain lists.
const DefaultTemplate = `Search for upcoming events with the following criteria:
- Location: %s
- Target Persona: %s
- Domain: %s

Find relevant events on LinkedIn Events, Luma, Eventbrite, and Meetup. Filter for events from today onwards. Enrich each event with organizer contact details and partnership links. Score each event for persona-domain alignment and draft outreach pitches.`

// Assemble commits any non-empty pending input into its chip list (existing
// chips first, then the committed term), clears the buffers, and rejects the
// submission when all three lists remain empty.
func Assemble(c model.SearchCriteria) (model.SearchCriteria, error) {
	c.Locations = commit(c.Locations, c.LocationInput)
	c.Personas = commit(c.Personas, c.PersonaInput)
	c.Domains = commit(c.Domains, c.DomainInput)
	c.LocationInput, c.PersonaInput, c.DomainInput = "", "", ""

	if c.Empty() {
		return c, ErrNoCriteria
	}
	return c, nil
}

// BuildMessage renders the agent prompt from committed criteria. Empty lists
// render as the literal "Any".
func BuildMessage(template string, c model.SearchCriteria) string {
	if template == "" {
		template = DefaultTemplate
	}
	return fmt.Sprintf(template, joinOrAny(c.Locations), joinOrAny(c.Personas), joinOrAny(c.Domains))
}

func commit(chips []string, pending string) []string {
	if term := strings.TrimSpace(pending); term != "" {
		return append(chips, term)
	}
	return chips
}

func joinOrAny(terms []string) string {
	if len(terms) == 0 {
		return "Any"
	}
	return strings.Join(terms, ", ")
}
