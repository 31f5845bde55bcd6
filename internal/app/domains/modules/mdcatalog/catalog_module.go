package mdcatalog

import (
	"context"
	"fmt"

	"storefront/internal/app/domains/entity/etproduct"
	"storefront/internal/app/domains/repo/rpproduct"
	"storefront/internal/app/pkg/errorx"
)

// CatalogModule product data access
type CatalogModule struct {
	productRepo rpproduct.ProductRepository
}

// NewCatalogModule creates the catalog module
func NewCatalogModule(productRepo rpproduct.ProductRepository) *CatalogModule {
	return &CatalogModule{productRepo: productRepo}
}

func (m *CatalogModule) CreateProduct(ctx context.Context, p *etproduct.Product) error {
	return m.productRepo.Create(ctx, p)
}

func (m *CatalogModule) UpdateProduct(ctx context.Context, p *etproduct.Product) error {
	return m.productRepo.Update(ctx, p)
}

func (m *CatalogModule) DeleteProduct(ctx context.Context, id string) error {
	return m.productRepo.Delete(ctx, id)
}

func (m *CatalogModule) GetProduct(ctx context.Context, id string) (*etproduct.Product, error) {
	return m.productRepo.GetByID(ctx, id)
}

func (m *CatalogModule) GetProductBySlug(ctx context.Context, slug string) (*etproduct.Product, error) {
	return m.productRepo.GetBySlug(ctx, slug)
}

func (m *CatalogModule) ListProducts(ctx context.Context, filter rpproduct.ListFilter) ([]*etproduct.Product, int64, error) {
	return m.productRepo.List(ctx, filter)
}

// LoadProducts loads every id, failing with ErrProductNotFound if one is missing
func (m *CatalogModule) LoadProducts(ctx context.Context, ids []string) (map[string]*etproduct.Product, error) {
	products, err := m.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*etproduct.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("product %s: %w", id, errorx.ErrProductNotFound)
		}
	}
	return byID, nil
}

// DecrementStock takes qty units out of stock
func (m *CatalogModule) DecrementStock(ctx context.Context, id string, qty int) error {
	return m.productRepo.DecrementStock(ctx, id, qty)
}
