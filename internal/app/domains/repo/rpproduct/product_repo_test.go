package rpproduct

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"storefront/internal/app/domains/entity/etproduct"
)

func TestGormModelRoundTrip(t *testing.T) {
	now := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	want := &etproduct.Product{
		ID:          "p1",
		Slug:        "team-hoodie",
		Name:        "Team Hoodie",
		Description: "Heavyweight fleece",
		PriceCents:  5500,
		Currency:    "USD",
		WeightLbs:   1.4,
		Images:      []string{"https://cdn.example.com/hoodie.png"},
		Sizes:       []string{"M", "L"},
		Stock:       12,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	po, err := toGormModel(want)
	require.NoError(t, err)
	require.JSONEq(t, `{"description":"Heavyweight fleece","weight_lbs":1.4,"images":["https://cdn.example.com/hoodie.png"],"sizes":["M","L"]}`, string(po.Body))

	got, err := toDomainModel(po)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("product mismatch (-want +got):\n%s", diff)
	}
}
