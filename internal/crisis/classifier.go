package crisis

import (
	"strings"
	"time"
)

// Match is the raw keyword-scan outcome for one message.
type Match struct {
	Severity Severity
	Keywords []string
}

// Result is a full classification of one message.
type Result struct {
	IsCrisis  bool      `json:"isCrisis"`
	Severity  Severity  `json:"severity"`
	Score     float64   `json:"score"`
	Keywords  []string  `json:"keywords"`
	Timestamp time.Time `json:"timestamp"`
}

// points contributed by one keyword hit of a given tier.
var tierPoints = map[Severity]float64{
	SeverityCritical: 3,
	SeverityHigh:     2,
	SeverityMedium:   1,
}

// Scan tests the message against the tiered keyword lists. The critical tier
// is evaluated first; if any keyword of a tier matches, that tier's severity
// wins and ALL matches of that tier are collected. Lower tiers are not
// evaluated once a higher tier has a match. Pure function.
func Scan(message string) Match {
	lower := strings.ToLower(message)
	for _, tier := range []struct {
		severity Severity
		words    []string
	}{
		{SeverityCritical, criticalKeywords},
		{SeverityHigh, highKeywords},
		{SeverityMedium, mediumKeywords},
	} {
		var hits []string
		for _, kw := range tier.words {
			if strings.Contains(lower, kw) {
				hits = append(hits, kw)
			}
		}
		if len(hits) > 0 {
			return Match{Severity: tier.severity, Keywords: hits}
		}
	}
	return Match{Severity: SeverityNone}
}

// Classify combines the keyword scan with a negative-affect density
// heuristic. Keyword hits score 3/2/1 points per critical/high/medium match;
// with no keyword hit, three or more negative-affect occurrences yield a low
// severity scored at 0.5. Never fails for well-formed string input.
func Classify(message string) Result {
	m := Scan(message)
	r := Result{
		Severity:  m.Severity,
		Keywords:  m.Keywords,
		Timestamp: time.Now(),
	}

	if m.Severity != SeverityNone {
		r.Score = tierPoints[m.Severity] * float64(len(m.Keywords))
	} else {
		lower := strings.ToLower(message)
		negatives := 0
		for _, w := range negativeAffectWords {
			negatives += strings.Count(lower, w)
		}
		if negatives >= 3 {
			r.Severity = SeverityLow
			r.Score += 0.5
		}
	}

	r.IsCrisis = r.Severity != SeverityNone
	return r
}
