package repository

import (
	"context"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
)

type ResourceRepository interface {
	Create(ctx context.Context, r *model.Resource) error
	FindByID(ctx context.Context, id string) (*model.Resource, error)
	List(ctx context.Context, f model.ResourceFilter) ([]model.Resource, error)
	IncrementViews(ctx context.Context, id string) error
	MarkHelpful(ctx context.Context, id string) error
}
