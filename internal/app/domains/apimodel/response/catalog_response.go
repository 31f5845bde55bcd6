package response

import (
	"time"

	"storefront/internal/app/domains/entity/etproduct"
)

// ProductResponse product (DTO)
type ProductResponse struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	WeightLbs   float64   `json:"weight_lbs"`
	Images      []string  `json:"images"`
	Sizes       []string  `json:"sizes"`
	Stock       int       `json:"stock"`
	InStock     bool      `json:"in_stock"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromProductEntity converts a product
func FromProductEntity(p *etproduct.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price(),
		Currency:    p.Currency,
		WeightLbs:   p.WeightLbs,
		Images:      nonNil(p.Images),
		Sizes:       nonNil(p.Sizes),
		Stock:       p.Stock,
		InStock:     p.Stock > 0,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FromProductEntities converts a product list
func FromProductEntities(products []*etproduct.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProductEntity(p))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
