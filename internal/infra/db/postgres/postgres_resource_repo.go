// File: internal/infra/db/postgres/postgres_resource_repo.go
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/repository"
)

var _ repository.ResourceRepository = (*ResourceRepo)(nil)

type ResourceRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresResourceRepo(pool *pgxpool.Pool) *ResourceRepo {
	return &ResourceRepo{pool: pool}
}

const resourceColumns = `id, title, description, category, content, url, language, tags, duration, is_emergency, views, helpful, created_at`

func (r *ResourceRepo) Create(ctx context.Context, res *model.Resource) error {
	const q = `
INSERT INTO resources (id, title, description, category, content, url, language, tags, duration, is_emergency, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,COALESCE($11,NOW()));`
	_, err := r.pool.Exec(ctx, q,
		res.ID, res.Title, res.Description, string(res.Category), res.Content, res.URL,
		res.Language, res.Tags, res.Duration, res.IsEmergency, res.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create resource: %w", err)
	}
	return nil
}

func (r *ResourceRepo) FindByID(ctx context.Context, id string) (*model.Resource, error) {
	q := `SELECT ` + resourceColumns + ` FROM resources WHERE id=$1;`
	res := &model.Resource{}
	var category string
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&res.ID, &res.Title, &res.Description, &category, &res.Content, &res.URL,
		&res.Language, &res.Tags, &res.Duration, &res.IsEmergency, &res.Views, &res.Helpful, &res.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find resource: %w", err)
	}
	res.Category = model.ResourceCategory(category)
	return res, nil
}

func (r *ResourceRepo) List(ctx context.Context, f model.ResourceFilter) ([]model.Resource, error) {
	var (
		where []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.Category != "" {
		where = append(where, "category = "+arg(string(f.Category)))
	}
	if f.Language != "" {
		where = append(where, "language = "+arg(f.Language))
	}
	if len(f.Tags) > 0 {
		where = append(where, "tags && "+arg(f.Tags))
	}
	if f.IsEmergency != nil {
		where = append(where, "is_emergency = "+arg(*f.IsEmergency))
	}

	q := `SELECT ` + resourceColumns + ` FROM resources`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY is_emergency DESC, helpful DESC, created_at DESC;"

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	var out []model.Resource
	for rows.Next() {
		var res model.Resource
		var category string
		if err := rows.Scan(
			&res.ID, &res.Title, &res.Description, &category, &res.Content, &res.URL,
			&res.Language, &res.Tags, &res.Duration, &res.IsEmergency, &res.Views, &res.Helpful, &res.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		res.Category = model.ResourceCategory(category)
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *ResourceRepo) IncrementViews(ctx context.Context, id string) error {
	return r.bump(ctx, id, "views")
}

func (r *ResourceRepo) MarkHelpful(ctx context.Context, id string) error {
	return r.bump(ctx, id, "helpful")
}

func (r *ResourceRepo) bump(ctx context.Context, id, column string) error {
	// column is one of two compile-time constants, never user input.
	q := fmt.Sprintf(`UPDATE resources SET %s = %s + 1 WHERE id=$1;`, column, column)
	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("bump %s: %w", column, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
