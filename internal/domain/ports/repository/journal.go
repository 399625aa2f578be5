package repository

import (
	"context"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
)

type JournalRepository interface {
	Create(ctx context.Context, e *model.JournalEntry) error
	FindByID(ctx context.Context, id string) (*model.JournalEntry, error)
	FindBySession(ctx context.Context, sessionID string, limit, offset int) ([]model.JournalEntry, int, error)
	Update(ctx context.Context, e *model.JournalEntry) error
	Delete(ctx context.Context, id string) error
}
