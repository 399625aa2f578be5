package adapter

import "context"

// SentimentResult as returned by a cloud NLP provider.
type SentimentResult struct {
	Score     float64 // -1 .. 1
	Magnitude float64 // 0 .. 1
}

// SentimentProvider is the port for hosted sentiment analysis. Failures are
// never surfaced to end users: the caller degrades to the lexicon scorer.
type SentimentProvider interface {
	AnalyzeSentiment(ctx context.Context, text string) (SentimentResult, error)
}

// Translator is the port for hosted text translation. On failure callers
// keep the original text.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}
