// File: internal/usecase/translate_uc_test.go
package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain"
)

func newTranslateFixture(tr *fakeTranslator, enabled bool, maxChars int) *translateUC {
	logger := zerolog.Nop()
	return NewTranslateUseCase(tr, enabled, maxChars, &logger)
}

func TestTranslateHappyPath(t *testing.T) {
	tr := &fakeTranslator{out: "नमस्ते दुनिया"}
	uc := newTranslateFixture(tr, true, 1000)

	out, err := uc.Translate(context.Background(), "hello world", "hi")
	if err != nil {
		t.Fatal(err)
	}
	if !out.Translated || out.Text != "नमस्ते दुनिया" {
		t.Errorf("result = %+v", out)
	}
	if out.SourceLanguage != "en" {
		t.Errorf("source = %s, want en", out.SourceLanguage)
	}
}

func TestTranslateValidation(t *testing.T) {
	uc := newTranslateFixture(&fakeTranslator{out: "x"}, true, 1000)

	if _, err := uc.Translate(context.Background(), "  ", "hi"); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("empty text: err = %v", err)
	}
	if _, err := uc.Translate(context.Background(), "hello", "fr"); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("unsupported target: err = %v", err)
	}
}

func TestTranslateSameLanguageSkipsProvider(t *testing.T) {
	tr := &fakeTranslator{out: "x"}
	uc := newTranslateFixture(tr, true, 1000)

	out, err := uc.Translate(context.Background(), "hello", "en")
	if err != nil {
		t.Fatal(err)
	}
	if out.Translated || tr.calls != 0 {
		t.Errorf("provider called for same-language input: %+v, calls=%d", out, tr.calls)
	}
}

func TestTranslateDisabledReturnsOriginal(t *testing.T) {
	tr := &fakeTranslator{out: "x"}
	uc := newTranslateFixture(tr, false, 1000)

	out, err := uc.Translate(context.Background(), "hello", "hi")
	if err != nil {
		t.Fatal(err)
	}
	if out.Translated || out.Text != "hello" || tr.calls != 0 {
		t.Errorf("disabled translation still translated: %+v", out)
	}
}

func TestTranslateCharacterBudget(t *testing.T) {
	tr := &fakeTranslator{out: "x"}
	uc := newTranslateFixture(tr, true, 10)

	if _, err := uc.Translate(context.Background(), "short", "hi"); err != nil {
		t.Fatal(err)
	}
	// 5 chars used; the next 6-char request breaks the 10-char budget.
	if _, err := uc.Translate(context.Background(), "longer", "hi"); !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Errorf("err = %v, want ErrQuotaExceeded", err)
	}
}

func TestTranslateProviderFailureKeepsOriginal(t *testing.T) {
	tr := &fakeTranslator{err: errors.New("upstream down")}
	uc := newTranslateFixture(tr, true, 1000)

	out, err := uc.Translate(context.Background(), "hello", "hi")
	if err != nil {
		t.Fatal(err)
	}
	if out.Translated || out.Text != "hello" {
		t.Errorf("provider failure must keep original text: %+v", out)
	}
}
