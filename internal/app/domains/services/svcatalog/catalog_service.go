package svcatalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"storefront/internal/app/domains/entity/etproduct"
	"storefront/internal/app/domains/modules/mdcatalog"
	"storefront/internal/app/domains/repo/rpproduct"
	"storefront/internal/app/pkg/errorx"
)

// CatalogService product catalog use cases
type CatalogService struct {
	catalogModule *mdcatalog.CatalogModule
	now           func() time.Time
}

// NewCatalogService creates the catalog service
func NewCatalogService(catalogModule *mdcatalog.CatalogModule) *CatalogService {
	return &CatalogService{
		catalogModule: catalogModule,
		now:           time.Now,
	}
}

// CreateProduct validates d and stores a new product
func (s *CatalogService) CreateProduct(ctx context.Context, d etproduct.Draft) (*etproduct.Product, error) {
	p, err := etproduct.NewProduct(uuid.New().String(), d, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.catalogModule.CreateProduct(ctx, p); err != nil {
		return nil, fmt.Errorf("save product failed: %w", err)
	}
	return p, nil
}

// UpdateProduct replaces the editable fields of product id
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, d etproduct.Draft) (*etproduct.Product, error) {
	p, err := s.catalogModule.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Apply(d, s.now()); err != nil {
		return nil, err
	}
	if err := s.catalogModule.UpdateProduct(ctx, p); err != nil {
		return nil, fmt.Errorf("update product failed: %w", err)
	}
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.catalogModule.DeleteProduct(ctx, id)
}

// GetActiveProduct storefront product page; inactive products are hidden
func (s *CatalogService) GetActiveProduct(ctx context.Context, slug string) (*etproduct.Product, error) {
	p, err := s.catalogModule.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, errorx.ErrProductNotFound
	}
	return p, nil
}

// ListProducts activeOnly is false for the admin listing
func (s *CatalogService) ListProducts(ctx context.Context, activeOnly bool, page, limit int) ([]*etproduct.Product, int64, error) {
	return s.catalogModule.ListProducts(ctx, rpproduct.ListFilter{
		ActiveOnly: activeOnly,
		Page:       page,
		Limit:      limit,
	})
}
