package rpcontent

import (
	"context"
	"time"

	"storefront/internal/app/domains/entity/etcontent"
)

// ListFilter content list options
type ListFilter struct {
	Kind          etcontent.Kind
	PublishedOnly bool
	// StartsAfter keeps items starting at or after this time, ordered by start ascending
	StartsAfter *time.Time
	Page        int
	Limit       int
}

// ContentRepository site document storage
type ContentRepository interface {
	Create(ctx context.Context, c *etcontent.Content) error
	Get(ctx context.Context, kind etcontent.Kind, slug string) (*etcontent.Content, error)
	GetByID(ctx context.Context, id string) (*etcontent.Content, error)
	Update(ctx context.Context, c *etcontent.Content) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]*etcontent.Content, int64, error)
}
