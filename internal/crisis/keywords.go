package crisis

// Severity of a detected crisis signal.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Severity-tagged keyword lists, English plus Devanagari-script Hindi.
// Matching is case-insensitive substring containment, not word-boundary:
// "sad" inside "sadly" counts. That over-matches, and it is kept on purpose
// for recall over precision in a safety context.
var (
	criticalKeywords = []string{
		"kill myself",
		"suicide",
		"end my life",
		"want to die",
		"better off dead",
		"end it all",
		"take my own life",
		// Hindi
		"आत्महत्या",
		"खुदकुशी",
		"मरना चाहता",
		"मरना चाहती",
		"अपनी जान ले",
	}

	highKeywords = []string{
		"don't want to live",
		"dont want to live",
		"no reason to live",
		"hurt myself",
		"harm myself",
		"cut myself",
		"self harm",
		"self-harm",
		"give up on life",
		"can't go on",
		"cant go on",
		// Hindi
		"जीना नहीं चाहता",
		"जीना नहीं चाहती",
		"खुद को चोट",
		"खुद को नुकसान",
		"कोई उम्मीद नहीं",
	}

	mediumKeywords = []string{
		"hopeless",
		"worthless",
		"no one cares",
		"nobody cares",
		"hate myself",
		"can't cope",
		"cant cope",
		"panic attack",
		"empty inside",
		"everything is pointless",
		// Hindi
		"बेकार हूं",
		"कोई परवाह नहीं",
		"टूट गया",
		"टूट गयी",
		"बहुत अकेला",
	}
)

// Negative-affect word list for the secondary heuristic applied when no
// tiered keyword matches.
var negativeAffectWords = []string{
	"sad", "depressed", "anxious", "lonely", "scared", "afraid",
}
