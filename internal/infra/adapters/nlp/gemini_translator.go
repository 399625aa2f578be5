// File: internal/infra/adapters/nlp/gemini_translator.go
package nlp

import (
	"context"
	"fmt"
	"strings"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/adapter"
)

var _ adapter.Translator = (*GeminiTranslator)(nil)

// GeminiTranslator translates through the chat model. Callers keep the
// original text when it errors.
type GeminiTranslator struct {
	ai    adapter.AIServiceAdapter
	model string
}

func NewGeminiTranslator(ai adapter.AIServiceAdapter, model string) *GeminiTranslator {
	return &GeminiTranslator{ai: ai, model: model}
}

func (g *GeminiTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	instruction := fmt.Sprintf(
		"Translate the user's message into the language with ISO 639-1 code %q. Output only the translation, nothing else.",
		targetLanguage,
	)
	turns := []adapter.Message{
		{Role: "system", Content: instruction},
		{Role: "user", Content: text},
	}
	out, err := g.ai.Chat(ctx, g.model, turns)
	if err != nil {
		return "", fmt.Errorf("translate chat: %w", err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("translate: empty output")
	}
	return out, nil
}
