package sample

import (
	"github.com/leadarch/scout/internal/core/model"
)

// Preview data served when no live agent is configured, and reused as test
// fixtures. Mirrors the shape of a fully enriched agent result.

var Events = []model.Event{
	{
		Title:             "AI & Machine Learning Summit 2025",
		Date:              "2025-04-15",
		Time:              "09:00 - 17:00",
		VenueName:         "Grand Hyatt San Francisco",
		VenueAddress:      "345 Stockton St, San Francisco, CA 94108",
		PlatformSource:    "Eventbrite",
		RegistrationURL:   "https://eventbrite.com/ai-ml-summit-2025",
		Description:       "A premier gathering of AI leaders, researchers, and practitioners exploring the latest breakthroughs in machine learning, generative AI, and enterprise adoption strategies.",
		AttendeeEstimate:  "2,500",
		OrganizerName:     "Dr. Sarah Chen",
		OrganizerRole:     "VP of Technology Partnerships",
		OrganizerLinkedIn: "https://linkedin.com/in/sarahchen",
		OrganizerEmail:    "sarah.chen@aisummit.io",
		PartnershipURL:    "https://aisummit.io/partners",
		CFPURL:            "https://aisummit.io/cfp",
		OrganizationName:  "TechForward Institute",
		PersonaMatchScore: 92,
		ScoreRationale:    "High alignment with AI/ML persona. Enterprise audience with strong decision-maker presence. Previous sponsors saw 3x ROI on partnership investment.",
		OutreachPitch:     "Hi Dr. Chen, I came across the AI & ML Summit and was impressed by the caliber of speakers and attendees. We believe our platform could add significant value as a sponsor partner, offering live demos and workshops to your enterprise audience.",
		EmailSubjectLine:  "Partnership Opportunity - AI & ML Summit 2025",
	},
	{
		Title:             "DevOps World Conference",
		Date:              "2025-05-22",
		Time:              "08:30 - 18:00",
		VenueName:         "Moscone Center",
		VenueAddress:      "747 Howard St, San Francisco, CA 94103",
		PlatformSource:    "LinkedIn Events",
		RegistrationURL:   "https://devopsworld.com/register",
		Description:       "The largest DevOps conference bringing together engineers, platform teams, and CTOs to discuss CI/CD, infrastructure-as-code, and cloud-native development.",
		AttendeeEstimate:  "5,000",
		OrganizerName:     "Marcus Rivera",
		OrganizerRole:     "Head of Developer Relations",
		OrganizerLinkedIn: "https://linkedin.com/in/marcusrivera",
		OrganizerEmail:    "marcus@devopsworld.com",
		PartnershipURL:    "https://devopsworld.com/sponsor",
		CFPURL:            "https://devopsworld.com/speak",
		OrganizationName:  "CloudNative Foundation",
		PersonaMatchScore: 78,
		ScoreRationale:    "Strong developer audience match. Good overlap with platform engineering persona. Large attendee count provides broad exposure.",
		OutreachPitch:     "Marcus, DevOps World is exactly the kind of event where our developer tools resonate. We would love to explore a workshop slot or demo booth to showcase our latest CI/CD integrations.",
		EmailSubjectLine:  "Speaker & Sponsor Inquiry - DevOps World",
	},
	{
		Title:             "Women in Tech Leadership Forum",
		Date:              "2025-03-28",
		Time:              "10:00 - 16:00",
		VenueName:         "The Ritz-Carlton",
		VenueAddress:      "600 Stockton St, San Francisco, CA 94108",
		PlatformSource:    "Luma",
		RegistrationURL:   "https://lu.ma/womenintechsf",
		Description:       "An exclusive forum for women leaders in technology, featuring fireside chats, mentorship sessions, and networking with C-suite executives.",
		AttendeeEstimate:  "300",
		OrganizerName:     "Priya Patel",
		OrganizerRole:     "Executive Director",
		OrganizerLinkedIn: "https://linkedin.com/in/priyapatel",
		OrganizerEmail:    "priya@witlforum.org",
		PartnershipURL:    "https://witlforum.org/partners",
		OrganizationName:  "Women in Tech Leadership",
		PersonaMatchScore: 65,
		ScoreRationale:    "Moderate alignment with core persona. Excellent networking quality with C-suite. Smaller event but high-value contacts.",
		OutreachPitch:     "Priya, we admire the work Women in Tech Leadership is doing. We would be honored to support this forum as a partner, offering scholarships and mentorship resources to attendees.",
		EmailSubjectLine:  "Supporting Women in Tech - Partnership Proposal",
	},
	{
		Title:             "Startup Pitch Night - Bay Area Edition",
		Date:              "2025-04-02",
		Time:              "18:00 - 21:00",
		VenueName:         "WeWork SOMA",
		VenueAddress:      "44 Tehama St, San Francisco, CA 94105",
		PlatformSource:    "Meetup",
		RegistrationURL:   "https://meetup.com/startup-pitch-night-sf",
		Description:       "Monthly pitch night for early-stage startups. 10 startups pitch to a panel of VCs and angels. Networking mixer follows.",
		AttendeeEstimate:  "150",
		OrganizerName:     "Jason Park",
		OrganizerRole:     "Community Lead",
		OrganizerLinkedIn: "https://linkedin.com/in/jasonpark",
		OrganizerEmail:    "jason@startuppitch.co",
		CFPURL:            "https://startuppitch.co/apply",
		OrganizationName:  "Startup Pitch Collective",
		PersonaMatchScore: 35,
		ScoreRationale:    "Lower alignment with enterprise persona. Primarily early-stage audience. Better suited for developer tools than enterprise solutions.",
		OutreachPitch:     "Jason, we noticed the Startup Pitch Night has a growing community. We could offer our platform as a prize for the winning team or provide a brief demo during the networking session.",
		EmailSubjectLine:  "Prize Sponsor Offer - Startup Pitch Night",
	},
}

var PastEvents = []model.Event{
	{
		Title:             "SaaS Growth Summit 2024",
		Date:              "2024-11-12",
		Time:              "09:00 - 17:00",
		VenueName:         "Marriott Marquis",
		VenueAddress:      "780 Mission St, San Francisco, CA 94103",
		PlatformSource:    "Eventbrite",
		RegistrationURL:   "https://eventbrite.com/saas-growth-2024",
		Description:       "Annual gathering of SaaS founders, investors, and operators discussing growth strategies, product-led growth, and market expansion.",
		AttendeeEstimate:  "1,200",
		OrganizerName:     "Amanda Lee",
		OrganizerRole:     "Head of Events",
		OrganizerLinkedIn: "https://linkedin.com/in/amandalee",
		OrganizerEmail:    "amanda@saasgrowth.io",
		PartnershipURL:    "https://saasgrowth.io/partners",
		OrganizationName:  "SaaS Growth Collective",
		PersonaMatchScore: 81,
		ScoreRationale:    "Strong SaaS audience alignment. High decision-maker density among attendees. Previous event had excellent sponsor engagement metrics.",
		OutreachPitch:     "Amanda, the SaaS Growth Summit was a fantastic event last year. We would love to discuss a partnership for next year, offering our analytics platform as a key sponsor resource.",
		EmailSubjectLine:  "Partnership Follow-up - SaaS Growth Summit",
	},
	{
		Title:             "Cloud Infrastructure Meetup",
		Date:              "2024-09-05",
		Time:              "18:30 - 21:00",
		VenueName:         "GitHub HQ",
		VenueAddress:      "88 Colin P. Kelly Jr. St, San Francisco, CA 94107",
		PlatformSource:    "Meetup",
		RegistrationURL:   "https://meetup.com/cloud-infra-sf",
		Description:       "Monthly meetup for cloud infrastructure engineers covering Kubernetes, serverless, and multi-cloud strategies.",
		AttendeeEstimate:  "180",
		OrganizerName:     "Derek Nguyen",
		OrganizerRole:     "Community Organizer",
		OrganizerLinkedIn: "https://linkedin.com/in/dereknguyen",
		OrganizerEmail:    "derek@cloudinfra.dev",
		CFPURL:            "https://cloudinfra.dev/speak",
		OrganizationName:  "Cloud Infrastructure SF",
		PersonaMatchScore: 58,
		ScoreRationale:    "Technical audience with moderate persona overlap. Good for brand awareness among infrastructure engineers. Smaller scale limits lead generation potential.",
		OutreachPitch:     "Derek, we enjoyed the Cloud Infrastructure Meetup and would be interested in sponsoring a future session or providing a lightning talk on our infrastructure tooling.",
		EmailSubjectLine:  "Sponsorship Interest - Cloud Infra Meetup",
	},
}

var Summary = model.DiscoveryResult{
	Events:                 Events,
	TotalEventsFound:       4,
	SearchSummary:          "Found 4 relevant events in San Francisco area matching AI/Tech persona across Eventbrite, LinkedIn Events, Luma, and Meetup platforms.",
	EnrichmentSummary:      "All 4 events enriched with organizer contact details, partnership URLs, and CFP links where available.",
	OverallStrategySummary: "Focus on the AI & ML Summit (92 score) and DevOps World (78 score) for maximum ROI. The Women in Tech Forum offers high-quality networking despite moderate score. Startup Pitch Night is lower priority but offers community visibility.",
}
