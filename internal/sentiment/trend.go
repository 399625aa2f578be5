package sentiment

import (
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
)

// TrendResult compares the first half of a message window against the second
// half to spot direction of travel in sentiment.
type TrendResult struct {
	Trend           string  `json:"trend"` // improving | declining | stable | neutral
	AvgScore        float64 `json:"avgScore"`
	Improvement     float64 `json:"improvement"`
	RecentSentiment float64 `json:"recentSentiment"`
}

// AnalyzeTrend scores each message with the lexicon scorer and compares
// half-window averages; a shift above 0.2 either way moves the label off
// "stable". Empty input returns neutral.
func AnalyzeTrend(messages []model.Message) TrendResult {
	if len(messages) == 0 {
		return TrendResult{Trend: "neutral"}
	}

	scores := make([]float64, len(messages))
	var sum float64
	for i, m := range messages {
		scores[i] = Score(m.Content).Score
		sum += scores[i]
	}
	avg := sum / float64(len(scores))

	mid := len(scores) / 2
	firstAvg := mean(scores[:mid])
	secondAvg := mean(scores[mid:])
	improvement := secondAvg - firstAvg

	trend := "stable"
	if improvement > 0.2 {
		trend = "improving"
	} else if improvement < -0.2 {
		trend = "declining"
	}

	return TrendResult{
		Trend:           trend,
		AvgScore:        avg,
		Improvement:     improvement,
		RecentSentiment: secondAvg,
	}
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var s float64
	for _, x := range xs {
		s += x
	}
	return s / float64(len(xs))
}
