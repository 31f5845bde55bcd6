package response

import (
	"time"

	"storefront/internal/app/domains/entity/etcontent"
	"storefront/internal/app/domains/services/svcontent"
)

// ContentResponse site document (DTO)
type ContentResponse struct {
	ID         string                 `json:"id"`
	Kind       string                 `json:"kind"`
	Slug       string                 `json:"slug"`
	Title      string                 `json:"title"`
	Published  bool                   `json:"published"`
	StartsAt   *time.Time             `json:"starts_at,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// HomeResponse landing page (DTO)
type HomeResponse struct {
	News     []*ContentResponse `json:"news"`
	Roster   []*ContentResponse `json:"roster"`
	Schedule []*ContentResponse `json:"schedule"`
}

// FromContentEntity converts a document
func FromContentEntity(c *etcontent.Content) *ContentResponse {
	return &ContentResponse{
		ID:         c.ID,
		Kind:       string(c.Kind),
		Slug:       c.Slug,
		Title:      c.Title,
		Published:  c.Published,
		StartsAt:   c.StartsAt,
		Attributes: c.Attributes,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// FromContentEntities converts a document list
func FromContentEntities(items []*etcontent.Content) []*ContentResponse {
	out := make([]*ContentResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromContentEntity(c))
	}
	return out
}

// FromHome converts the landing page sections
func FromHome(h *svcontent.Home) *HomeResponse {
	return &HomeResponse{
		News:     FromContentEntities(h.News),
		Roster:   FromContentEntities(h.Roster),
		Schedule: FromContentEntities(h.Schedule),
	}
}
