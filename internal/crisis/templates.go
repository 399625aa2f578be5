package crisis

// Helpline is one crisis support contact.
type Helpline struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Hours       string `json:"hours"`
	Description string `json:"description"`
}

// Response is the severity-indexed safety payload surfaced alongside the
// conversational reply. Static data, no computation.
type Response struct {
	Message       string     `json:"message"`
	Helplines     []Helpline `json:"helplines,omitempty"`
	UrgentActions []string   `json:"urgentActions,omitempty"`
	Resources     []string   `json:"resources,omitempty"`
	Suggestions   []string   `json:"suggestions,omitempty"`
	ShowEmergency bool       `json:"showEmergency"`
}

var helplines = []Helpline{
	{
		Name:        "Vandrevala Foundation",
		Number:      "1860-2662-345 / 1800-2333-330",
		Hours:       "24/7",
		Description: "Free mental health support and crisis intervention",
	},
	{
		Name:        "AASRA",
		Number:      "91-9820466726",
		Hours:       "24/7",
		Description: "Crisis helpline for suicide prevention",
	},
	{
		Name:        "iCall",
		Number:      "91-9152987821",
		Hours:       "Mon-Sat, 8 AM - 10 PM",
		Description: "Psychosocial helpline by TISS",
	},
	{
		Name:        "Snehi",
		Number:      "91-22-27546669",
		Hours:       "24/7",
		Description: "Crisis intervention for emotional support",
	},
}

var severeResponse = Response{
	Message:   "I'm really concerned about what you're sharing. Your feelings are valid, but I want to make sure you're safe.",
	Helplines: helplines,
	UrgentActions: []string{
		"If you're in immediate danger, please call 112 (emergency services)",
		"Reach out to a trusted friend or family member right now",
		"Consider visiting the nearest hospital emergency room",
	},
	ShowEmergency: true,
}

var mediumResponse = Response{
	Message: "I hear that you're going through a difficult time. It's brave of you to reach out. Have you considered talking to a counselor?",
	Resources: []string{
		"Consider reaching out to a trusted adult or friend",
		"School/college counseling services might be helpful",
		"Online therapy platforms like BetterHelp or YourDOST",
	},
}

var lowResponse = Response{
	Message: "Thank you for sharing that with me. It sounds challenging. Would you like to explore some coping strategies together?",
	Suggestions: []string{
		"Let's try some breathing exercises",
		"Would you like to journal about your feelings?",
		"Sometimes a short walk can help clear the mind",
	},
}

// ResponseFor returns the safety payload for a severity tier. High and
// critical share the helpline payload; both flag the emergency affordance.
// Returns nil for SeverityNone.
func ResponseFor(severity Severity) *Response {
	switch severity {
	case SeverityCritical, SeverityHigh:
		r := severeResponse
		return &r
	case SeverityMedium:
		r := mediumResponse
		return &r
	case SeverityLow:
		r := lowResponse
		return &r
	default:
		return nil
	}
}
