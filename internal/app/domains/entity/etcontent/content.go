package etcontent

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"storefront/internal/app/pkg/errorx"
)

// Kind document kind
type Kind string

const (
	KindNews     Kind = "news"
	KindRoster   Kind = "roster"
	KindSchedule Kind = "schedule"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ParseKind validates a kind from a path or query parameter
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindNews, KindRoster, KindSchedule:
		return k, nil
	default:
		return "", errorx.NewValidationError("kind", fmt.Sprintf("must be one of news, roster, schedule, got %q", s))
	}
}

// Content a site document. Attributes hold the kind specific fields
// (article text, player handle and role, opponent and stream link).
type Content struct {
	ID         string
	Kind       Kind
	Slug       string
	Title      string
	Published  bool
	StartsAt   *time.Time
	Attributes map[string]interface{}
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Draft editable fields of a document
type Draft struct {
	Slug       string
	Title      string
	Published  bool
	StartsAt   *time.Time
	Attributes map[string]interface{}
}

// NewContent creates a document of kind
func NewContent(id string, kind Kind, d Draft, now time.Time) (*Content, error) {
	c := &Content{ID: id, Kind: kind, CreatedAt: now}
	if err := c.Apply(d, now); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply validates d and replaces the editable fields
func (c *Content) Apply(d Draft, now time.Time) error {
	d.Slug = strings.ToLower(strings.TrimSpace(d.Slug))
	d.Title = strings.TrimSpace(d.Title)

	switch {
	case d.Title == "":
		return errorx.NewValidationError("title", "is required")
	case d.Slug == "":
		return errorx.NewValidationError("slug", "is required")
	case !slugPattern.MatchString(d.Slug):
		return errorx.NewValidationError("slug", "must be lowercase letters, digits and dashes")
	case c.Kind == KindSchedule && d.StartsAt == nil:
		return errorx.NewValidationError("starts_at", "is required for schedule items")
	}

	c.Slug = d.Slug
	c.Title = d.Title
	c.Published = d.Published
	c.StartsAt = d.StartsAt
	c.Attributes = d.Attributes
	c.UpdatedAt = now
	return nil
}

// Upcoming reports whether a schedule item starts at or after now
func (c *Content) Upcoming(now time.Time) bool {
	return c.StartsAt != nil && !c.StartsAt.Before(now)
}
