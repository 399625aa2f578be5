package repository

import (
	"context"
	"time"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
)

// SessionRepository persists conversation sessions, their ordered history,
// crisis log and mood log. Ordered read/append is all the core relies on.
type SessionRepository interface {
	Create(ctx context.Context, s *model.Session) error
	Find(ctx context.Context, sessionID string) (*model.Session, error)

	AppendMessage(ctx context.Context, m *model.Message) error
	History(ctx context.Context, sessionID string) ([]model.Message, error)
	ClearHistory(ctx context.Context, sessionID string) error

	AppendCrisisEvent(ctx context.Context, e *model.CrisisEvent) error

	AppendMoodEntry(ctx context.Context, e *model.MoodEntry) error
	MoodEntries(ctx context.Context, sessionID string, since time.Time) ([]model.MoodEntry, error)

	Touch(ctx context.Context, sessionID string) error

	// DeleteIdleBefore removes sessions whose last activity predates cutoff.
	DeleteIdleBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
