package rpproduct

import (
	"context"

	"storefront/internal/app/domains/entity/etproduct"
)

// ListFilter product list options
type ListFilter struct {
	ActiveOnly bool
	Page       int
	Limit      int
}

// ProductRepository product storage
type ProductRepository interface {
	// Create fails with errorx.ErrDuplicateSlug when the slug is taken
	Create(ctx context.Context, p *etproduct.Product) error

	GetByID(ctx context.Context, id string) (*etproduct.Product, error)

	GetBySlug(ctx context.Context, slug string) (*etproduct.Product, error)

	// GetByIDs missing ids are skipped
	GetByIDs(ctx context.Context, ids []string) ([]*etproduct.Product, error)

	Update(ctx context.Context, p *etproduct.Product) error

	Delete(ctx context.Context, id string) error

	List(ctx context.Context, filter ListFilter) ([]*etproduct.Product, int64, error)

	// DecrementStock fails with errorx.ErrOutOfStock when fewer than qty units remain
	DecrementStock(ctx context.Context, id string, qty int) error
}
