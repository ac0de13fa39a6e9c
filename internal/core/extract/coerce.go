package extract

import (
	"fmt"
	"strconv"

	"github.com/leadarch/scout/internal/core/model"
)

// CoerceEvent converts one raw event object into a canonical Event. It is
// total: missing, null, or oddly typed fields degrade to their defaults
// instead of failing the whole list.
func CoerceEvent(raw map[string]any) model.Event {
	return model.Event{
		Title:             stringField(raw, "event_title", model.DefaultTitle),
		Date:              stringField(raw, "event_date", ""),
		Time:              stringField(raw, "event_time", ""),
		VenueName:         stringField(raw, "venue_name", ""),
		VenueAddress:      stringField(raw, "venue_address", ""),
		PlatformSource:    stringField(raw, "platform_source", model.DefaultPlatform),
		RegistrationURL:   stringField(raw, "registration_url", ""),
		Description:       stringField(raw, "event_description", ""),
		AttendeeEstimate:  stringField(raw, "estimated_attendee_count", ""),
		OrganizerName:     stringField(raw, "organizer_name", ""),
		OrganizerRole:     stringField(raw, "organizer_role", ""),
		OrganizerLinkedIn: stringField(raw, "organizer_linkedin_url", ""),
		OrganizerEmail:    stringField(raw, "organizer_email", ""),
		PartnershipURL:    stringField(raw, "partnership_url", ""),
		CFPURL:            stringField(raw, "cfp_url", ""),
		OrganizationName:  stringField(raw, "organization_name", ""),
		PersonaMatchScore: model.ClampScore(scoreField(raw, "persona_match_score")),
		ScoreRationale:    stringField(raw, "score_rationale", ""),
		OutreachPitch:     stringField(raw, "outreach_pitch", ""),
		EmailSubjectLine:  stringField(raw, "email_subject_line", ""),
	}
}

func stringField(m map[string]any, key, fallback string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	// Scalars the agent sometimes emits instead of strings (counts, booleans)
	// are stringified rather than dropped.
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return fmt.Sprintf("%v", v)
}

func scoreField(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return int(f)
		}
	}
	return 0
}

func intField(m map[string]any, key string, fallback int) int {
	if f, ok := m[key].(float64); ok {
		return int(f)
	}
	return fallback
}
