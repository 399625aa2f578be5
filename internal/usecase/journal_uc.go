// File: internal/usecase/journal_uc.go
package usecase

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/repository"
)

// Compile-time check
var _ JournalUseCase = (*journalUC)(nil)

type JournalUseCase interface {
	CreateEntry(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error)
	GetEntry(ctx context.Context, sessionID, id string) (*model.JournalEntry, error)
	ListEntries(ctx context.Context, sessionID string, limit, offset int) ([]model.JournalEntry, int, error)
	UpdateEntry(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error)
	DeleteEntry(ctx context.Context, sessionID, id string) error
	Prompts() []string
}

// journalingPrompts is the pool Prompts samples from; each call returns a
// fresh random selection so repeat visitors see variety.
var journalingPrompts = []string{
	"What made you smile today, even briefly?",
	"Describe a moment this week when you felt proud of yourself.",
	"What is one worry you can set down for tonight?",
	"Write about someone who makes you feel safe.",
	"What would you tell a friend who felt the way you feel right now?",
	"Name three small things you're grateful for today.",
	"What's something you're looking forward to?",
}

type journalUC struct {
	journals repository.JournalRepository
	sessions repository.SessionRepository
}

func NewJournalUseCase(journals repository.JournalRepository, sessions repository.SessionRepository) *journalUC {
	return &journalUC{journals: journals, sessions: sessions}
}

func (j *journalUC) CreateEntry(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error) {
	e.Content = strings.TrimSpace(e.Content)
	if e.SessionID == "" || e.Content == "" {
		return nil, domain.ErrInvalidArgument
	}
	if e.Mood != "" && !e.Mood.Valid() {
		return nil, domain.ErrInvalidArgument
	}
	if _, err := j.sessions.Find(ctx, e.SessionID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(e.Title) == "" {
		e.Title = "Untitled Entry"
	}
	now := time.Now()
	e.ID = ulid.Make().String()
	e.CreatedAt = now
	e.UpdatedAt = now
	if err := j.journals.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (j *journalUC) GetEntry(ctx context.Context, sessionID, id string) (*model.JournalEntry, error) {
	e, err := j.journals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Entries are private to their session.
	if e.SessionID != sessionID {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (j *journalUC) ListEntries(ctx context.Context, sessionID string, limit, offset int) ([]model.JournalEntry, int, error) {
	if sessionID == "" {
		return nil, 0, domain.ErrInvalidArgument
	}
	return j.journals.FindBySession(ctx, sessionID, limit, offset)
}

func (j *journalUC) UpdateEntry(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error) {
	existing, err := j.GetEntry(ctx, e.SessionID, e.ID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(e.Content) != "" {
		existing.Content = strings.TrimSpace(e.Content)
	}
	if strings.TrimSpace(e.Title) != "" {
		existing.Title = e.Title
	}
	if e.Mood != "" {
		if !e.Mood.Valid() {
			return nil, domain.ErrInvalidArgument
		}
		existing.Mood = e.Mood
	}
	if e.Tags != nil {
		existing.Tags = e.Tags
	}
	existing.UpdatedAt = time.Now()
	if err := j.journals.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (j *journalUC) DeleteEntry(ctx context.Context, sessionID, id string) error {
	if _, err := j.GetEntry(ctx, sessionID, id); err != nil {
		return err
	}
	return j.journals.Delete(ctx, id)
}

const promptSampleSize = 5

func (j *journalUC) Prompts() []string {
	out := make([]string, 0, promptSampleSize)
	for _, i := range rand.Perm(len(journalingPrompts))[:promptSampleSize] {
		out = append(out, journalingPrompts[i])
	}
	return out
}
