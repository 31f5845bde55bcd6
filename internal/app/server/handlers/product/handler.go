package product

import "storefront/internal/app/domains/services/svcatalog"

// ProductHandler catalog HTTP handler
type ProductHandler struct {
	catalogService *svcatalog.CatalogService
}

// NewProductHandler creates the handler
func NewProductHandler(catalogService *svcatalog.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}
