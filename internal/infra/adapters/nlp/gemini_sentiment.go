// File: internal/infra/adapters/nlp/gemini_sentiment.go
package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/adapter"
)

var _ adapter.SentimentProvider = (*GeminiSentiment)(nil)

const sentimentInstruction = `You are a sentiment analysis engine.
Given a message, respond with ONLY a JSON object of the form
{"score": <float -1..1>, "magnitude": <float 0..1>}
where score is polarity and magnitude is emotional intensity. No prose.`

// GeminiSentiment scores sentiment by prompting the chat model for a
// structured verdict. Callers degrade to the local lexicon when it errors.
type GeminiSentiment struct {
	ai    adapter.AIServiceAdapter
	model string
}

func NewGeminiSentiment(ai adapter.AIServiceAdapter, model string) *GeminiSentiment {
	return &GeminiSentiment{ai: ai, model: model}
}

func (g *GeminiSentiment) AnalyzeSentiment(ctx context.Context, text string) (adapter.SentimentResult, error) {
	turns := []adapter.Message{
		{Role: "system", Content: sentimentInstruction},
		{Role: "user", Content: text},
	}
	raw, err := g.ai.Chat(ctx, g.model, turns)
	if err != nil {
		return adapter.SentimentResult{}, fmt.Errorf("sentiment chat: %w", err)
	}

	var out struct {
		Score     float64 `json:"score"`
		Magnitude float64 `json:"magnitude"`
	}
	if err := json.Unmarshal([]byte(stripFences(raw)), &out); err != nil {
		return adapter.SentimentResult{}, fmt.Errorf("sentiment parse %q: %w", raw, err)
	}
	return adapter.SentimentResult{
		Score:     clamp(out.Score, -1, 1),
		Magnitude: clamp(out.Magnitude, 0, 1),
	}, nil
}

// stripFences trims markdown code fences the model sometimes wraps JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
