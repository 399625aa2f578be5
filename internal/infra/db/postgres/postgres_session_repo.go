// File: internal/infra/db/postgres/postgres_session_repo.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/repository"
	"github.com/ShamanRShetty/Mental-Wellness/internal/infra/redis"
)

// SessionRepo persists sessions, their ordered history, crisis log and mood
// log. A Redis snapshot cache, when present, saves the hot-path reads;
// Postgres remains the source of truth.
var _ repository.SessionRepository = (*SessionRepo)(nil)

type SessionRepo struct {
	pool  *pgxpool.Pool
	cache *redis.SessionCache
}

func NewPostgresSessionRepo(pool *pgxpool.Pool, cache *redis.SessionCache) *SessionRepo {
	return &SessionRepo{pool: pool, cache: cache}
}

func (r *SessionRepo) Create(ctx context.Context, s *model.Session) error {
	const q = `
INSERT INTO sessions (id, language, notifications, created_at, last_active)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (id) DO NOTHING;`
	tag, err := r.pool.Exec(ctx, q, s.ID, s.Preferences.Language, s.Preferences.Notifications, s.CreatedAt, s.LastActive)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyExists
	}
	if r.cache != nil {
		_ = r.cache.Store(ctx, s)
	}
	return nil
}

func (r *SessionRepo) Find(ctx context.Context, sessionID string) (*model.Session, error) {
	if r.cache != nil {
		if s, err := r.cache.Get(ctx, sessionID); err == nil {
			return s, nil
		}
	}

	const q = `SELECT id, language, notifications, created_at, last_active FROM sessions WHERE id=$1;`
	s := &model.Session{}
	err := r.pool.QueryRow(ctx, q, sessionID).Scan(
		&s.ID, &s.Preferences.Language, &s.Preferences.Notifications, &s.CreatedAt, &s.LastActive,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	if s.History, err = r.History(ctx, sessionID); err != nil {
		return nil, err
	}
	if s.CrisisLog, err = r.crisisLog(ctx, sessionID); err != nil {
		return nil, err
	}
	if s.MoodEntries, err = r.MoodEntries(ctx, sessionID, time.Time{}); err != nil {
		return nil, err
	}

	if r.cache != nil {
		_ = r.cache.Store(ctx, s)
	}
	return s, nil
}

func (r *SessionRepo) AppendMessage(ctx context.Context, m *model.Message) error {
	const q = `
INSERT INTO messages (session_id, role, content, sentiment_score, sentiment_magnitude, created_at)
VALUES ($1,$2,$3,$4,$5,COALESCE($6,NOW()));`
	var score, magnitude sql.NullFloat64
	if m.Sentiment != nil {
		score = sql.NullFloat64{Float64: m.Sentiment.Score, Valid: true}
		magnitude = sql.NullFloat64{Float64: m.Sentiment.Magnitude, Valid: true}
	}
	if _, err := r.pool.Exec(ctx, q, m.SessionID, m.Role, m.Content, score, magnitude, m.Timestamp); err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	r.invalidate(ctx, m.SessionID)
	return nil
}

func (r *SessionRepo) History(ctx context.Context, sessionID string) ([]model.Message, error) {
	const q = `
SELECT role, content, sentiment_score, sentiment_magnitude, created_at
FROM messages WHERE session_id=$1 ORDER BY id;`
	rows, err := r.pool.Query(ctx, q, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	var out []model.Message
	for rows.Next() {
		m := model.Message{SessionID: sessionID}
		var score, magnitude sql.NullFloat64
		if err := rows.Scan(&m.Role, &m.Content, &score, &magnitude, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		if score.Valid {
			m.Sentiment = &model.Sentiment{Score: score.Float64, Magnitude: magnitude.Float64}
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *SessionRepo) ClearHistory(ctx context.Context, sessionID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE session_id=$1;`, sessionID); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	r.invalidate(ctx, sessionID)
	return nil
}

func (r *SessionRepo) AppendCrisisEvent(ctx context.Context, e *model.CrisisEvent) error {
	const q = `
INSERT INTO crisis_events (session_id, severity, keywords, score, response_provided, created_at)
VALUES ($1,$2,$3,$4,$5,COALESCE($6,NOW()));`
	if _, err := r.pool.Exec(ctx, q, e.SessionID, e.Severity, e.Keywords, e.Score, e.ResponseProvided, e.Timestamp); err != nil {
		return fmt.Errorf("append crisis event: %w", err)
	}
	r.invalidate(ctx, e.SessionID)
	return nil
}

func (r *SessionRepo) crisisLog(ctx context.Context, sessionID string) ([]model.CrisisEvent, error) {
	const q = `
SELECT severity, keywords, score, response_provided, created_at
FROM crisis_events WHERE session_id=$1 ORDER BY id;`
	rows, err := r.pool.Query(ctx, q, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load crisis log: %w", err)
	}
	defer rows.Close()

	var out []model.CrisisEvent
	for rows.Next() {
		e := model.CrisisEvent{SessionID: sessionID}
		if err := rows.Scan(&e.Severity, &e.Keywords, &e.Score, &e.ResponseProvided, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan crisis event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *SessionRepo) AppendMoodEntry(ctx context.Context, e *model.MoodEntry) error {
	const q = `
INSERT INTO mood_entries (session_id, mood, intensity, note, activities, triggers, created_at)
VALUES ($1,$2,$3,$4,$5,$6,COALESCE($7,NOW()));`
	if _, err := r.pool.Exec(ctx, q, e.SessionID, string(e.Mood), e.Intensity, e.Note, e.Activities, e.Triggers, e.Timestamp); err != nil {
		return fmt.Errorf("append mood entry: %w", err)
	}
	r.invalidate(ctx, e.SessionID)
	return nil
}

func (r *SessionRepo) MoodEntries(ctx context.Context, sessionID string, since time.Time) ([]model.MoodEntry, error) {
	const q = `
SELECT mood, intensity, note, activities, triggers, created_at
FROM mood_entries WHERE session_id=$1 AND created_at >= $2 ORDER BY id;`
	rows, err := r.pool.Query(ctx, q, sessionID, since)
	if err != nil {
		return nil, fmt.Errorf("load mood entries: %w", err)
	}
	defer rows.Close()

	var out []model.MoodEntry
	for rows.Next() {
		e := model.MoodEntry{SessionID: sessionID}
		var mood string
		if err := rows.Scan(&mood, &e.Intensity, &e.Note, &e.Activities, &e.Triggers, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan mood entry: %w", err)
		}
		e.Mood = model.Mood(mood)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *SessionRepo) Touch(ctx context.Context, sessionID string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE sessions SET last_active=NOW() WHERE id=$1;`, sessionID)
	if err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if r.cache != nil {
		_ = r.cache.Extend(ctx, sessionID)
	}
	return nil
}

func (r *SessionRepo) DeleteIdleBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	// Child rows go with the session via ON DELETE CASCADE.
	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE last_active < $1;`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete idle sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SessionRepo) invalidate(ctx context.Context, sessionID string) {
	if r.cache != nil {
		_ = r.cache.Delete(ctx, sessionID)
	}
}
