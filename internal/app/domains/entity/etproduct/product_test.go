package etproduct

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/app/pkg/errorx"
)

func jersey() Draft {
	return Draft{
		Slug:       "home-jersey-2026",
		Name:       "Home Jersey 2026",
		PriceCents: 6500,
		WeightLbs:  0.6,
		Sizes:      []string{"S", "M", "L"},
		Stock:      3,
		Active:     true,
	}
}

func TestNewProduct(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	p, err := NewProduct("p1", jersey(), now)
	require.NoError(t, err)
	assert.Equal(t, "USD", p.Currency)
	assert.Equal(t, 65.0, p.Price())
	assert.Equal(t, now, p.CreatedAt)
	assert.True(t, p.HasSize("m"))
	assert.False(t, p.HasSize("XL"))
}

func TestNewProduct_Validation(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Draft)
		field string
	}{
		{"missing name", func(d *Draft) { d.Name = " " }, "name"},
		{"missing slug", func(d *Draft) { d.Slug = "" }, "slug"},
		{"bad slug", func(d *Draft) { d.Slug = "Home Jersey" }, "slug"},
		{"free", func(d *Draft) { d.PriceCents = 0 }, "price"},
		{"negative stock", func(d *Draft) { d.Stock = -1 }, "stock"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := jersey()
			tt.edit(&d)
			_, err := NewProduct("p1", d, time.Now())
			var verr *errorx.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCheckAvailable(t *testing.T) {
	p, err := NewProduct("p1", jersey(), time.Now())
	require.NoError(t, err)

	assert.NoError(t, p.CheckAvailable(3))
	assert.ErrorIs(t, p.CheckAvailable(4), errorx.ErrOutOfStock)

	p.Active = false
	assert.ErrorIs(t, p.CheckAvailable(1), errorx.ErrProductInactive)
}

func TestShippingWeight(t *testing.T) {
	p := &Product{}
	assert.Equal(t, 1.0, p.ShippingWeight())
	p.WeightLbs = 2.25
	assert.Equal(t, 2.25, p.ShippingWeight())
}
