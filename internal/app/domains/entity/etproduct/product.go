package etproduct

import (
	"regexp"
	"strings"
	"time"

	"storefront/internal/app/pkg/errorx"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Product merchandise item (aggregate root)
type Product struct {
	ID          string
	Slug        string
	Name        string
	Description string
	PriceCents  int64
	Currency    string
	WeightLbs   float64
	Images      []string
	Sizes       []string
	Stock       int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Draft editable fields of a product
type Draft struct {
	Slug        string
	Name        string
	Description string
	PriceCents  int64
	Currency    string
	WeightLbs   float64
	Images      []string
	Sizes       []string
	Stock       int
	Active      bool
}

// NewProduct creates a product from a validated draft
func NewProduct(id string, d Draft, now time.Time) (*Product, error) {
	p := &Product{ID: id, CreatedAt: now}
	if err := p.Apply(d, now); err != nil {
		return nil, err
	}
	return p, nil
}

// Apply validates d and replaces the editable fields
func (p *Product) Apply(d Draft, now time.Time) error {
	d.Slug = strings.ToLower(strings.TrimSpace(d.Slug))
	d.Name = strings.TrimSpace(d.Name)
	d.Currency = strings.ToUpper(strings.TrimSpace(d.Currency))

	switch {
	case d.Name == "":
		return errorx.NewValidationError("name", "is required")
	case d.Slug == "":
		return errorx.NewValidationError("slug", "is required")
	case !slugPattern.MatchString(d.Slug):
		return errorx.NewValidationError("slug", "must be lowercase letters, digits and dashes")
	case d.PriceCents <= 0:
		return errorx.NewValidationError("price", "must be greater than 0")
	case d.Stock < 0:
		return errorx.NewValidationError("stock", "must not be negative")
	case d.WeightLbs < 0:
		return errorx.NewValidationError("weight_lbs", "must not be negative")
	}
	if d.Currency == "" {
		d.Currency = "USD"
	}

	p.Slug = d.Slug
	p.Name = d.Name
	p.Description = d.Description
	p.PriceCents = d.PriceCents
	p.Currency = d.Currency
	p.WeightLbs = d.WeightLbs
	p.Images = d.Images
	p.Sizes = d.Sizes
	p.Stock = d.Stock
	p.Active = d.Active
	p.UpdatedAt = now
	return nil
}

// Price unit price in currency units
func (p *Product) Price() float64 {
	return float64(p.PriceCents) / 100
}

// ShippingWeight weight used for quotes, a weightless item ships as one pound
func (p *Product) ShippingWeight() float64 {
	if p.WeightLbs <= 0 {
		return 1
	}
	return p.WeightLbs
}

// HasSize reports whether size is offered; products without sizes accept ""
func (p *Product) HasSize(size string) bool {
	if len(p.Sizes) == 0 {
		return size == ""
	}
	for _, s := range p.Sizes {
		if strings.EqualFold(s, size) {
			return true
		}
	}
	return false
}

// CheckAvailable checks that qty units can be sold
func (p *Product) CheckAvailable(qty int) error {
	if !p.Active {
		return errorx.ErrProductInactive
	}
	if qty > p.Stock {
		return errorx.ErrOutOfStock
	}
	return nil
}
