package crisis

import (
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
)

// Trend labels over a conversation window.
const (
	TrendNeutral    = "neutral"
	TrendStable     = "stable"
	TrendMonitoring = "monitoring"
	TrendConcerning = "concerning"
	TrendWorsening  = "worsening"
)

// TrendResult summarizes how crisis signal evolves over recent user turns.
type TrendResult struct {
	Trend          string  `json:"trend"`
	Confidence     string  `json:"confidence"` // low | medium | high
	AvgScore       float64 `json:"avgScore"`
	Recommendation string  `json:"recommendation"`
}

var trendRecommendations = map[string]string{
	TrendNeutral:    "Keep the conversation going; not enough signal yet.",
	TrendStable:     "Conversation looks steady. Continue supportive listening.",
	TrendMonitoring: "Mild distress signal. Gently check in on how they are coping.",
	TrendConcerning: "Distress is building. Suggest talking to a counselor and share support resources.",
	TrendWorsening:  "Strong escalating distress. Surface helplines and encourage immediate support.",
}

// AnalyzeTrend re-classifies the user turns in the trailing window of the
// conversation and buckets a recency-weighted average score. Histories
// shorter than 5 messages return {neutral, low} immediately. Pure function;
// the history is not mutated.
func AnalyzeTrend(history []model.Message) TrendResult {
	if len(history) < 5 {
		return TrendResult{
			Trend:          TrendNeutral,
			Confidence:     "low",
			Recommendation: trendRecommendations[TrendNeutral],
		}
	}

	window := history
	if len(window) > 10 {
		window = window[len(window)-10:]
	}

	var weighted float64
	userCount := 0
	for i, msg := range window {
		if msg.Role != model.RoleUser {
			continue
		}
		score := Classify(msg.Content).Score
		// Linear recency weight within the 10-message window.
		weighted += score * float64(i+1) / 10
		userCount++
	}
	if userCount == 0 {
		return TrendResult{
			Trend:          TrendNeutral,
			Confidence:     "low",
			Recommendation: trendRecommendations[TrendNeutral],
		}
	}

	// Divided by the user-message count, not by the weight sum.
	avg := weighted / float64(userCount)

	var trend, confidence string
	switch {
	case avg > 2:
		trend, confidence = TrendWorsening, "high"
	case avg > 1:
		trend, confidence = TrendConcerning, "medium"
	case avg > 0.5:
		trend, confidence = TrendMonitoring, "low"
	default:
		trend, confidence = TrendStable, "medium"
	}

	return TrendResult{
		Trend:          trend,
		Confidence:     confidence,
		AvgScore:       avg,
		Recommendation: trendRecommendations[trend],
	}
}
