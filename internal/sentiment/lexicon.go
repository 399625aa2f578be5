package sentiment

import "strings"

// Polarity lexicons for the local fallback scorer. Matching is substring
// containment per whitespace token ("happier" hits "happy"); over-matching is
// accepted for recall.
var positiveWords = []string{
	"happy", "joy", "excited", "grateful", "thankful", "blessed",
	"wonderful", "amazing", "great", "excellent", "love", "better",
	"improved", "progress", "hopeful", "proud", "accomplished",
}

var negativeWords = []string{
	"sad", "depressed", "anxious", "worried", "scared", "afraid",
	"hopeless", "worthless", "lonely", "isolated", "stressed",
	"overwhelmed", "exhausted", "tired", "frustrated", "angry",
	"hate", "terrible", "awful", "worse", "failed",
}

// Labels bucketing the -1..1 score.
const (
	LabelPositive         = "positive"
	LabelSlightlyPositive = "slightly_positive"
	LabelNeutral          = "neutral"
	LabelSlightlyNegative = "slightly_negative"
	LabelNegative         = "negative"
)

// Analysis is one sentiment measurement.
type Analysis struct {
	Score         float64 `json:"score"`     // -1 .. 1
	Magnitude     float64 `json:"magnitude"` // 0 .. 1
	Label         string  `json:"sentiment"`
	PositiveCount int     `json:"positiveCount"`
	NegativeCount int     `json:"negativeCount"`
	Confidence    float64 `json:"confidence"`
	UsedCloudNLP  bool    `json:"usedCloudNLP"`
}

// Label buckets a score through the shared thresholds.
func Label(score float64) string {
	switch {
	case score > 0.3:
		return LabelPositive
	case score > 0.1:
		return LabelSlightlyPositive
	case score < -0.3:
		return LabelNegative
	case score < -0.1:
		return LabelSlightlyNegative
	default:
		return LabelNeutral
	}
}

// Score runs the lexicon scorer. Deterministic and pure: identical input
// yields identical output.
func Score(text string) Analysis {
	tokens := strings.Fields(strings.ToLower(text))

	var pos, neg int
	for _, tok := range tokens {
		for _, w := range positiveWords {
			if strings.Contains(tok, w) {
				pos++
				break
			}
		}
		for _, w := range negativeWords {
			if strings.Contains(tok, w) {
				neg++
				break
			}
		}
	}

	var score, magnitude float64
	if total := pos + neg; total > 0 {
		score = float64(pos-neg) / float64(total)
	}
	if len(tokens) > 0 {
		magnitude = float64(pos+neg) / float64(len(tokens))
	}

	return Analysis{
		Score:         score,
		Magnitude:     magnitude,
		Label:         Label(score),
		PositiveCount: pos,
		NegativeCount: neg,
		Confidence:    abs(score),
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
