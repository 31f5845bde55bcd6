package etorder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/app/domains/entity/etshipping"
)

func sampleItems() []Item {
	return []Item{
		{ProductID: "p1", Name: "Jersey", Quantity: 2, UnitPriceCents: 6500, WeightLbs: 0.6},
		{ProductID: "p2", Name: "Cap", Quantity: 1, UnitPriceCents: 2599, WeightLbs: 0.3},
	}
}

func TestNewOrder(t *testing.T) {
	now := time.Now()
	quote := &etshipping.Quote{TotalCost: 41.00, Currency: "USD"}

	o, err := NewOrder("o1", "ORD-1", Customer{Email: "fan@example.com"}, Address{PostalCode: "90210"}, sampleItems(), quote, now)
	require.NoError(t, err)
	assert.Equal(t, int64(15599), o.SubtotalCents)
	assert.Equal(t, int64(4100), o.ShippingCents)
	assert.Equal(t, int64(19699), o.TotalCents)
	assert.Equal(t, StatusPendingPayment, o.Status)
	assert.InDelta(t, 1.5, TotalWeight(o.Items), 1e-9)

	_, err = NewOrder("o1", "ORD-1", Customer{}, Address{}, nil, quote, now)
	assert.ErrorIs(t, err, ErrEmptyItems)
	_, err = NewOrder("o1", "ORD-1", Customer{}, Address{}, sampleItems(), nil, now)
	assert.ErrorIs(t, err, ErrNilQuote)
}

func TestTransition(t *testing.T) {
	o := &Order{ID: "o1", Status: StatusPendingPayment}

	changed, err := o.Transition(StatusPaid, time.Now())
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = o.Transition(StatusPaid, time.Now())
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = o.Transition(StatusPaymentFailed, time.Now())
	assert.ErrorContains(t, err, "cannot become PAYMENT_FAILED")
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(4100), ToCents(41))
	assert.Equal(t, int64(2351), ToCents(23.51))
	assert.Equal(t, int64(4765), ToCents(47.65))
}
