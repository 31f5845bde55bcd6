package rporder

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/app/domains/entity/etorder"
	"storefront/internal/app/domains/entity/etshipping"
)

func TestGormModelRoundTrip(t *testing.T) {
	now := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	want := &etorder.Order{
		ID:            "o1",
		OrderNumber:   "ORD-42",
		Customer:      etorder.Customer{Name: "Sam", Email: "sam@example.com"},
		ShipTo:        etorder.Address{Street1: "1 Main St", City: "Beverly Hills", State: "CA", PostalCode: "90210", Country: "US"},
		Items:         []etorder.Item{{ProductID: "p1", Name: "Jersey", Quantity: 1, UnitPriceCents: 6500, WeightLbs: 0.6}},
		SubtotalCents: 6500,
		ShippingCents: 4100,
		TotalCents:    10600,
		Currency:      "USD",
		Status:        etorder.StatusPendingPayment,
		ShippingQuote: &etshipping.Quote{TotalCost: 41, Zone: 8, Currency: "USD", Algorithm: "zone", Factors: []string{"carrier_base"}},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	po, err := toGormModel(want)
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", po.Email)

	got, err := toDomainModel(po)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}
