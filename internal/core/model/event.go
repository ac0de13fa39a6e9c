package model

import (
	"fmt"
	"net/url"
)

// Event is one discovered event candidate as reported by the discovery agent.
// Field names mirror the agent's JSON output keys.
type Event struct {
	Title             string `json:"event_title"`
	Date              string `json:"event_date"` // ISO YYYY-MM-DD or empty
	Time              string `json:"event_time"`
	VenueName         string `json:"venue_name"`
	VenueAddress      string `json:"venue_address"`
	PlatformSource    string `json:"platform_source"`
	RegistrationURL   string `json:"registration_url"`
	Description       string `json:"event_description"`
	AttendeeEstimate  string `json:"estimated_attendee_count"`
	OrganizerName     string `json:"organizer_name"`
	OrganizerRole     string `json:"organizer_role"`
	OrganizerLinkedIn string `json:"organizer_linkedin_url"`
	OrganizerEmail    string `json:"organizer_email"`
	PartnershipURL    string `json:"partnership_url"`
	CFPURL            string `json:"cfp_url"`
	OrganizationName  string `json:"organization_name"`
	PersonaMatchScore int    `json:"persona_match_score"`
	ScoreRationale    string `json:"score_rationale"`
	OutreachPitch     string `json:"outreach_pitch"`
	EmailSubjectLine  string `json:"email_subject_line"`
}

// DefaultTitle and DefaultPlatform are shown as primary labels downstream,
// so their defaults are not the empty string.
const (
	DefaultTitle    = "Untitled Event"
	DefaultPlatform = "Unknown"
)

// Key identifies an event across discovery results and the pipeline.
// Two events with the same title and date are the same event.
type Key struct {
	Title string
	Date  string
}

func (e Event) Key() Key {
	return Key{Title: e.Title, Date: e.Date}
}

func (k Key) String() string {
	return fmt.Sprintf("%s|%s", k.Title, k.Date)
}

// ClampScore bounds a persona match score to [0, 100] for display.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// MailtoURL builds the draft-email link for an event's organizer, carrying the
// suggested subject line and outreach pitch. Empty if there is no address.
func MailtoURL(e Event) string {
	if e.OrganizerEmail == "" {
		return ""
	}
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		url.QueryEscape(e.OrganizerEmail),
		url.QueryEscape(e.EmailSubjectLine),
		url.QueryEscape(e.OutreachPitch))
}
