package model

import "time"

type ResourceCategory string

const (
	ResourceArticle    ResourceCategory = "article"
	ResourceVideo      ResourceCategory = "video"
	ResourceHelpline   ResourceCategory = "helpline"
	ResourceExercise   ResourceCategory = "exercise"
	ResourceMeditation ResourceCategory = "meditation"
	ResourceEmergency  ResourceCategory = "emergency"
)

func (c ResourceCategory) Valid() bool {
	switch c {
	case ResourceArticle, ResourceVideo, ResourceHelpline, ResourceExercise, ResourceMeditation, ResourceEmergency:
		return true
	}
	return false
}

// Resource is a curated wellness resource (article, helpline, exercise...).
type Resource struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    ResourceCategory `json:"category"`
	Content     string           `json:"content,omitempty"`
	URL         string           `json:"url,omitempty"`
	Language    string           `json:"language"`
	Tags        []string         `json:"tags"`
	Duration    int              `json:"duration,omitempty"` // minutes
	IsEmergency bool             `json:"isEmergency"`
	Views       int              `json:"views"`
	Helpful     int              `json:"helpful"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// ResourceFilter narrows a resource listing. Zero values mean "no filter".
type ResourceFilter struct {
	Category    ResourceCategory
	Language    string
	Tags        []string
	IsEmergency *bool
}
