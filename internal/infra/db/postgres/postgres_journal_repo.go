// File: internal/infra/db/postgres/postgres_journal_repo.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/repository"
	"github.com/ShamanRShetty/Mental-Wellness/internal/infra/security"
)

var _ repository.JournalRepository = (*JournalRepo)(nil)

// JournalRepo stores journal entries. When a cipher is configured the entry
// content is encrypted at rest; titles, moods, and tags stay queryable.
type JournalRepo struct {
	pool   *pgxpool.Pool
	cipher *security.EncryptionService
}

func NewPostgresJournalRepo(pool *pgxpool.Pool, cipher *security.EncryptionService) *JournalRepo {
	return &JournalRepo{pool: pool, cipher: cipher}
}

func (r *JournalRepo) seal(content string) (string, error) {
	if r.cipher == nil {
		return content, nil
	}
	return r.cipher.Encrypt(content)
}

func (r *JournalRepo) open(content string) (string, error) {
	if r.cipher == nil {
		return content, nil
	}
	return r.cipher.Decrypt(content)
}

func (r *JournalRepo) Create(ctx context.Context, e *model.JournalEntry) error {
	content, err := r.seal(e.Content)
	if err != nil {
		return fmt.Errorf("seal journal entry: %w", err)
	}
	const q = `
INSERT INTO journal_entries (id, session_id, title, content, mood, tags, prompt, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9);`
	_, err = r.pool.Exec(ctx, q, e.ID, e.SessionID, e.Title, content, e.Mood, e.Tags, e.Prompt, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create journal entry: %w", err)
	}
	return nil
}

func (r *JournalRepo) FindByID(ctx context.Context, id string) (*model.JournalEntry, error) {
	const q = `
SELECT id, session_id, title, content, mood, tags, prompt, created_at, updated_at
FROM journal_entries WHERE id=$1;`
	e := &model.JournalEntry{}
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&e.ID, &e.SessionID, &e.Title, &e.Content, &e.Mood, &e.Tags, &e.Prompt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find journal entry: %w", err)
	}
	content, err := r.open(e.Content)
	if err != nil {
		return nil, fmt.Errorf("open journal entry: %w", err)
	}
	e.Content = content
	return e, nil
}

func (r *JournalRepo) FindBySession(ctx context.Context, sessionID string, limit, offset int) ([]model.JournalEntry, int, error) {
	if limit <= 0 {
		limit = 20
	}
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM journal_entries WHERE session_id=$1;`, sessionID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count journal entries: %w", err)
	}

	const q = `
SELECT id, session_id, title, content, mood, tags, prompt, created_at, updated_at
FROM journal_entries WHERE session_id=$1
ORDER BY created_at DESC LIMIT $2 OFFSET $3;`
	rows, err := r.pool.Query(ctx, q, sessionID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	var out []model.JournalEntry
	for rows.Next() {
		var e model.JournalEntry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Title, &e.Content, &e.Mood, &e.Tags, &e.Prompt, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan journal entry: %w", err)
		}
		content, err := r.open(e.Content)
		if err != nil {
			return nil, 0, fmt.Errorf("open journal entry: %w", err)
		}
		e.Content = content
		out = append(out, e)
	}
	return out, total, rows.Err()
}

func (r *JournalRepo) Update(ctx context.Context, e *model.JournalEntry) error {
	content, err := r.seal(e.Content)
	if err != nil {
		return fmt.Errorf("seal journal entry: %w", err)
	}
	const q = `
UPDATE journal_entries
SET title=$2, content=$3, mood=$4, tags=$5, updated_at=$6
WHERE id=$1;`
	tag, err := r.pool.Exec(ctx, q, e.ID, e.Title, content, e.Mood, e.Tags, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update journal entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *JournalRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM journal_entries WHERE id=$1;`, id)
	if err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
