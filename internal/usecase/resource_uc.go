// File: internal/usecase/resource_uc.go
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/ports/repository"
)

// Compile-time check
var _ ResourceUseCase = (*resourceUC)(nil)

type ResourceUseCase interface {
	AddResource(ctx context.Context, r *model.Resource) (*model.Resource, error)
	GetResource(ctx context.Context, id string) (*model.Resource, error)
	ListResources(ctx context.Context, f model.ResourceFilter) ([]model.Resource, error)
	EmergencyResources(ctx context.Context, language string) ([]model.Resource, error)
	MarkHelpful(ctx context.Context, id string) error
}

type resourceUC struct {
	resources repository.ResourceRepository
	log       *zerolog.Logger
}

func NewResourceUseCase(resources repository.ResourceRepository, logger *zerolog.Logger) *resourceUC {
	return &resourceUC{resources: resources, log: logger}
}

func (r *resourceUC) AddResource(ctx context.Context, res *model.Resource) (*model.Resource, error) {
	res.Title = strings.TrimSpace(res.Title)
	if res.Title == "" || !res.Category.Valid() {
		return nil, domain.ErrInvalidArgument
	}
	if res.Language == "" {
		res.Language = "en"
	}
	res.ID = uuid.NewString()
	res.CreatedAt = time.Now()
	if res.Category == model.ResourceEmergency {
		res.IsEmergency = true
	}
	if err := r.resources.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetResource fetches one resource and counts the view. A failed view bump
// never blocks the read.
func (r *resourceUC) GetResource(ctx context.Context, id string) (*model.Resource, error) {
	res, err := r.resources.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.resources.IncrementViews(ctx, id); err != nil {
		r.log.Warn().Err(err).Str("resource_id", id).Msg("view count bump failed")
	} else {
		res.Views++
	}
	return res, nil
}

func (r *resourceUC) ListResources(ctx context.Context, f model.ResourceFilter) ([]model.Resource, error) {
	if f.Category != "" && !f.Category.Valid() {
		return nil, domain.ErrInvalidArgument
	}
	return r.resources.List(ctx, f)
}

// EmergencyResources returns crisis resources for a language, falling back
// to English when the language has none. Never returns an empty list
// silently if English entries exist.
func (r *resourceUC) EmergencyResources(ctx context.Context, language string) ([]model.Resource, error) {
	yes := true
	out, err := r.resources.List(ctx, model.ResourceFilter{Language: language, IsEmergency: &yes})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 && language != "en" {
		return r.resources.List(ctx, model.ResourceFilter{Language: "en", IsEmergency: &yes})
	}
	return out, nil
}

func (r *resourceUC) MarkHelpful(ctx context.Context, id string) error {
	return r.resources.MarkHelpful(ctx, id)
}
