// File: internal/usecase/journal_uc_test.go
package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
)

func newJournalFixture() (*journalUC, *model.Session) {
	sessions := newFakeSessionRepo()
	s := model.NewSession("sess-1", "en")
	_ = sessions.Create(context.Background(), s)
	return NewJournalUseCase(newFakeJournalRepo(), sessions), s
}

func TestCreateEntryDefaultsTitle(t *testing.T) {
	uc, s := newJournalFixture()

	e, err := uc.CreateEntry(context.Background(), &model.JournalEntry{
		SessionID: s.ID,
		Content:   "today was hard but I managed",
	})
	if err != nil {
		t.Fatal(err)
	}
	if e.Title != "Untitled Entry" {
		t.Errorf("title = %q, want Untitled Entry", e.Title)
	}
	if e.ID == "" {
		t.Error("entry ID not assigned")
	}
	if e.CreatedAt.IsZero() || !e.CreatedAt.Equal(e.UpdatedAt) {
		t.Error("timestamps not initialized")
	}
}

func TestCreateEntryValidation(t *testing.T) {
	uc, s := newJournalFixture()

	if _, err := uc.CreateEntry(context.Background(), &model.JournalEntry{SessionID: s.ID, Content: "  "}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("empty content: err = %v", err)
	}
	if _, err := uc.CreateEntry(context.Background(), &model.JournalEntry{SessionID: s.ID, Content: "x", Mood: "rage"}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("invalid mood: err = %v", err)
	}
	if _, err := uc.CreateEntry(context.Background(), &model.JournalEntry{SessionID: "missing", Content: "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown session: err = %v", err)
	}
}

func TestEntriesArePrivateToSession(t *testing.T) {
	uc, s := newJournalFixture()

	e, err := uc.CreateEntry(context.Background(), &model.JournalEntry{SessionID: s.ID, Content: "private thoughts"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := uc.GetEntry(context.Background(), "other-session", e.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("cross-session read: err = %v, want ErrNotFound", err)
	}
	if err := uc.DeleteEntry(context.Background(), "other-session", e.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("cross-session delete: err = %v, want ErrNotFound", err)
	}
	if _, err := uc.GetEntry(context.Background(), s.ID, e.ID); err != nil {
		t.Errorf("owner read failed: %v", err)
	}
}

func TestUpdateEntryPartial(t *testing.T) {
	uc, s := newJournalFixture()
	e, _ := uc.CreateEntry(context.Background(), &model.JournalEntry{SessionID: s.ID, Title: "Day 1", Content: "original"})

	updated, err := uc.UpdateEntry(context.Background(), &model.JournalEntry{
		ID:        e.ID,
		SessionID: s.ID,
		Content:   "revised",
		Mood:      model.MoodHappy,
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Content != "revised" || updated.Mood != model.MoodHappy {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.Title != "Day 1" {
		t.Errorf("title overwritten: %q", updated.Title)
	}
	if !updated.UpdatedAt.After(e.CreatedAt) && !updated.UpdatedAt.Equal(e.CreatedAt) {
		t.Error("updated_at not advanced")
	}
}

func TestListEntriesPagination(t *testing.T) {
	uc, s := newJournalFixture()
	for i := 0; i < 5; i++ {
		if _, err := uc.CreateEntry(context.Background(), &model.JournalEntry{SessionID: s.ID, Content: "entry"}); err != nil {
			t.Fatal(err)
		}
	}

	page, total, err := uc.ListEntries(context.Background(), s.ID, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 5 || len(page) != 2 {
		t.Errorf("total = %d, page = %d; want 5, 2", total, len(page))
	}
}

func TestPromptsSamplesWithoutRepeats(t *testing.T) {
	uc, _ := newJournalFixture()

	pool := map[string]bool{}
	for _, p := range journalingPrompts {
		pool[p] = true
	}

	for i := 0; i < 20; i++ {
		ps := uc.Prompts()
		if len(ps) != promptSampleSize {
			t.Fatalf("got %d prompts, want %d", len(ps), promptSampleSize)
		}
		seen := map[string]bool{}
		for _, p := range ps {
			if !pool[p] {
				t.Errorf("unknown prompt %q", p)
			}
			if seen[p] {
				t.Errorf("prompt %q repeated in one sample", p)
			}
			seen[p] = true
		}
	}
}

func TestPromptsListIsCopied(t *testing.T) {
	uc, _ := newJournalFixture()
	ps := uc.Prompts()
	if len(ps) == 0 {
		t.Fatal("no prompts")
	}
	ps[0] = "mutated"
	for _, p := range uc.Prompts() {
		if p == "mutated" {
			t.Error("internal prompt list leaked")
		}
	}
}
