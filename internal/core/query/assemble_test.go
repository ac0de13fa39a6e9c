package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadarch/scout/internal/core/model"
)

func TestAssembleCommitsPendingInputs(t *testing.T) {
	criteria := model.SearchCriteria{
		Locations:     []string{"San Francisco"},
		LocationInput: "  Oakland  ",
		PersonaInput:  "CTO",
	}

	committed, err := Assemble(criteria)

	require.NoError(t, err)
	assert.Equal(t, []string{"San Francisco", "Oakland"}, committed.Locations)
	assert.Equal(t, []string{"CTO"}, committed.Personas)
	assert.Empty(t, committed.LocationInput)
	assert.Empty(t, committed.PersonaInput)
}

func TestAssembleRejectsEmptySubmission(t *testing.T) {
	_, err := Assemble(model.SearchCriteria{})
	assert.ErrorIs(t, err, ErrNoCriteria)
}

func TestAssembleWhitespacePendingIsNotCommitted(t *testing.T) {
	_, err := Assemble(model.SearchCriteria{LocationInput: "   "})
	assert.ErrorIs(t, err, ErrNoCriteria)
}

func TestAssemblePendingAloneIsEnough(t *testing.T) {
	committed, err := Assemble(model.SearchCriteria{DomainInput: "AI"})

	require.NoError(t, err)
	assert.Equal(t, []string{"AI"}, committed.Domains)
}

func TestBuildMessageJoinsTerms(t *testing.T) {
	msg := BuildMessage("", model.SearchCriteria{
		Locations: []string{"San Francisco", "Oakland"},
		Personas:  []string{"CTO"},
	})

	assert.Contains(t, msg, "- Location: San Francisco, Oakland")
	assert.Contains(t, msg, "- Target Persona: CTO")
	assert.Contains(t, msg, "- Domain: Any")
}

func TestBuildMessageCustomTemplate(t *testing.T) {
	msg := BuildMessage("loc=%s persona=%s domain=%s", model.SearchCriteria{
		Domains: []string{"SaaS"},
	})

	assert.Equal(t, "loc=Any persona=Any domain=SaaS", msg)
}
