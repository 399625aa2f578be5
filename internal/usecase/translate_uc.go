// File: internal/usecase/translate_uc.go
package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/adapter"
	"github.com/ShamanRShetty/Mental-Wellness/internal/respond"
)

// Compile-time check
var _ TranslateUseCase = (*translateUC)(nil)

// Translation is the outcome of one translate call. Translated is false when
// the text came back unchanged (feature disabled or provider failure).
type Translation struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
	Translated     bool   `json:"translated"`
}

type TranslateUseCase interface {
	Translate(ctx context.Context, text, targetLanguage string) (*Translation, error)
}

type translateUC struct {
	translator adapter.Translator
	enabled    bool
	maxChars   int
	log        *zerolog.Logger

	mu     sync.Mutex
	used   int
	capDay time.Time
	now    func() time.Time
}

func NewTranslateUseCase(translator adapter.Translator, enabled bool, maxChars int, logger *zerolog.Logger) *translateUC {
	if maxChars <= 0 {
		maxChars = 5000
	}
	return &translateUC{
		translator: translator,
		enabled:    enabled && translator != nil,
		maxChars:   maxChars,
		log:        logger,
		now:        time.Now,
	}
}

func (t *translateUC) Translate(ctx context.Context, text, targetLanguage string) (*Translation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrInvalidArgument
	}
	if !supportedLanguage(targetLanguage) {
		return nil, domain.ErrInvalidArgument
	}

	source := string(respond.DetectLanguage(text))
	out := &Translation{
		Text:           text,
		SourceLanguage: source,
		TargetLanguage: targetLanguage,
	}
	if !t.enabled || source == targetLanguage {
		return out, nil
	}
	if !t.consume(len(text)) {
		return nil, domain.ErrQuotaExceeded
	}

	translated, err := t.translator.Translate(ctx, text, targetLanguage)
	if err != nil {
		t.log.Warn().Err(err).Str("target", targetLanguage).Msg("translation failed; returning original text")
		return out, nil
	}
	out.Text = translated
	out.Translated = true
	return out, nil
}

// consume charges n characters against the daily budget, rolling the counter
// over on a calendar-day boundary.
func (t *translateUC) consume(n int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	today := t.now().Truncate(24 * time.Hour)
	if !today.Equal(t.capDay) {
		t.capDay = today
		t.used = 0
	}
	if t.used+n > t.maxChars {
		return false
	}
	t.used += n
	return true
}

func supportedLanguage(code string) bool {
	for _, l := range respond.SupportedLanguages() {
		if string(l) == code {
			return true
		}
	}
	return false
}
