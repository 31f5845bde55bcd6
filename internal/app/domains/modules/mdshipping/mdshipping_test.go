package mdshipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/app/domains/entity/etshipping"
	"storefront/internal/app/pkg/errorx"
)

func fixtureTable(t *testing.T) *etshipping.PostalTable {
	t.Helper()
	table, err := etshipping.NewPostalTable([]etshipping.PostalPoint{
		{Code: "11549", Latitude: 40.7146, Longitude: -73.6006, City: "Hempstead", State: "NY"},
		{Code: "11550", Latitude: 40.7063, Longitude: -73.6187, City: "Hempstead", State: "NY"},
		{Code: "19103", Latitude: 39.9529, Longitude: -75.1741, City: "Philadelphia", State: "PA"},
		{Code: "02108", Latitude: 42.3576, Longitude: -71.0651, City: "Boston", State: "MA"},
		{Code: "60601", Latitude: 41.8856, Longitude: -87.6219, City: "Chicago", State: "IL"},
		{Code: "75201", Latitude: 32.7877, Longitude: -96.7990, City: "Dallas", State: "TX"},
		{Code: "80202", Latitude: 39.7528, Longitude: -104.9992, City: "Denver", State: "CO"},
		{Code: "90210", Latitude: 34.0901, Longitude: -118.4065, City: "Beverly Hills", State: "CA"},
		{Code: "99501", Latitude: 61.2166, Longitude: -149.8764, City: "Anchorage", State: "AK"},
	})
	require.NoError(t, err)
	return table
}

func fixtureEstimator(t *testing.T) *DistanceEstimator {
	t.Helper()
	est, err := NewDistanceEstimator(fixtureTable(t), "11549")
	require.NoError(t, err)
	return est
}

func TestHaversineMiles(t *testing.T) {
	d := HaversineMiles(40.7146, -73.6006, 34.0901, -118.4065)
	assert.InDelta(t, 2474.32, d, 0.01)

	// symmetric
	assert.Equal(t, d, HaversineMiles(34.0901, -118.4065, 40.7146, -73.6006))

	assert.Equal(t, 0.0, HaversineMiles(40.7146, -73.6006, 40.7146, -73.6006))

	// antipodes stay finite
	assert.InDelta(t, 3959*3.141592653589793, HaversineMiles(0, 0, 0, 180), 0.5)
}

func TestNewDistanceEstimator_UnknownOrigin(t *testing.T) {
	_, err := NewDistanceEstimator(fixtureTable(t), "00000")
	assert.ErrorContains(t, err, "origin postal code 00000")
}

func TestDistanceEstimator_Estimate(t *testing.T) {
	est := fixtureEstimator(t)

	got, err := est.Estimate("90210")
	require.NoError(t, err)
	assert.Equal(t, "Beverly Hills", got.Destination.City)
	assert.Equal(t, "CA", got.Destination.State)
	assert.GreaterOrEqual(t, got.Miles, 2400.0)
	assert.LessOrEqual(t, got.Miles, 2550.0)
	assert.False(t, got.Estimated)

	self, err := est.Estimate("11549")
	require.NoError(t, err)
	assert.Equal(t, 0.0, self.Miles)

	_, err = est.Estimate("12345")
	var lookupErr *errorx.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "12345", lookupErr.PostalCode)
}

func TestDistanceEstimator_EstimateByPrefix(t *testing.T) {
	est := fixtureEstimator(t)

	got, err := est.EstimateByPrefix("59999")
	require.NoError(t, err)
	assert.True(t, got.Estimated)
	assert.Equal(t, UnknownPlace, got.Destination.City)
	assert.Equal(t, UnknownPlace, got.Destination.State)
	assert.InDelta(t, 1119.94, got.Miles, 0.01)

	_, err = est.EstimateByPrefix("ABCDE")
	assert.ErrorAs(t, err, new(*errorx.LookupError))
}

func TestIsRemotePrefix(t *testing.T) {
	for _, zip := range []string{"00601", "00901", "00802", "96813", "96910", "99501", "99950"} {
		assert.True(t, IsRemotePrefix(zip), zip)
	}
	for _, zip := range []string{"00501", "01001", "11549", "90210", "97204", "12"} {
		assert.False(t, IsRemotePrefix(zip), zip)
	}
}

func TestValidateQuoteRequest(t *testing.T) {
	weight := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		req     etshipping.QuoteRequest
		wantErr any
		field   string
	}{
		{name: "missing zip", req: etshipping.QuoteRequest{DestinationCountry: "US"}, wantErr: new(*errorx.ValidationError), field: "destinationZip"},
		{name: "missing country", req: etshipping.QuoteRequest{DestinationPostalCode: "90210"}, wantErr: new(*errorx.ValidationError), field: "destinationCountry"},
		{name: "canada", req: etshipping.QuoteRequest{DestinationPostalCode: "90210", DestinationCountry: "CA"}, wantErr: new(*errorx.UnsupportedRegionError)},
		{name: "malformed zip", req: etshipping.QuoteRequest{DestinationPostalCode: "9021", DestinationCountry: "US"}, wantErr: new(*errorx.LookupError)},
		{name: "zero weight", req: etshipping.QuoteRequest{DestinationPostalCode: "90210", DestinationCountry: "US", WeightLbs: weight(0)}, wantErr: new(*errorx.ValidationError), field: "weight"},
		{name: "negative weight", req: etshipping.QuoteRequest{DestinationPostalCode: "90210", DestinationCountry: "US", WeightLbs: weight(-2)}, wantErr: new(*errorx.ValidationError), field: "weight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateQuoteRequest(tt.req)
			require.Error(t, err)
			assert.ErrorAs(t, err, tt.wantErr)
			if tt.field != "" {
				var verr *errorx.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.field, verr.Field)
			}
		})
	}

	got, err := ValidateQuoteRequest(etshipping.QuoteRequest{DestinationPostalCode: " 90210-1234 ", DestinationCountry: "us"})
	require.NoError(t, err)
	assert.Equal(t, "90210", got.DestinationPostalCode)
	assert.Equal(t, "US", got.DestinationCountry)
	assert.Equal(t, etshipping.DefaultWeightLbs, got.Weight())
}

func TestValidateQuoteRequest_NormalizesWeight(t *testing.T) {
	for in, want := range map[float64]float64{
		2.5:   2.5,
		1.009: 1.01,
		1.011: 1.01,
		0.004: 0.01,
	} {
		w := in
		got, err := ValidateQuoteRequest(etshipping.QuoteRequest{DestinationPostalCode: "90210", DestinationCountry: "US", WeightLbs: &w})
		require.NoError(t, err)
		assert.Equal(t, want, got.Weight(), "weight %v", in)
		assert.Equal(t, in, w, "caller's weight must not change")
	}
}

func TestNewFormula(t *testing.T) {
	f, err := NewFormula("", DefaultRates())
	require.NoError(t, err)
	assert.Equal(t, FormulaZone, f.Name())
	assert.False(t, f.FallbackOnUnknown())

	f, err = NewFormula("Itemized", DefaultRates())
	require.NoError(t, err)
	assert.Equal(t, FormulaItemized, f.Name())
	assert.True(t, f.FallbackOnUnknown())

	_, err = NewFormula("flat", DefaultRates())
	assert.ErrorContains(t, err, `unknown pricing formula "flat"`)
}

func priceZip(t *testing.T, engine *PricingEngine, zip string, weight float64) etshipping.Quote {
	t.Helper()
	est, err := fixtureEstimator(t).Estimate(zip)
	require.NoError(t, err)
	return engine.Price(est, weight, engine.LocalCarrierBase())
}

func TestZoneFormula_Scenarios(t *testing.T) {
	formula, err := NewFormula(FormulaZone, DefaultRates())
	require.NoError(t, err)
	engine := NewPricingEngine(nil, formula, DefaultRates())

	tests := []struct {
		zip   string
		zone  int
		total float64
	}{
		{"11549", 1, 23.50},
		{"11550", 1, 23.50},
		{"19103", 2, 26.00},
		{"02108", 3, 28.50},
		{"60601", 5, 33.50},
		{"75201", 6, 36.00},
		{"80202", 7, 38.50},
		{"90210", 8, 41.00},
	}
	for _, tt := range tests {
		q := priceZip(t, engine, tt.zip, 1)
		assert.Equal(t, tt.zone, q.Zone, tt.zip)
		assert.Equal(t, tt.total, q.TotalCost, tt.zip)
		assert.Equal(t, 8.50, q.Breakdown.Base, tt.zip)
		assert.Equal(t, 15.00, q.Breakdown.Operational, tt.zip)
		assert.Equal(t, q.Breakdown.Total(), q.TotalCost, tt.zip)
	}

	q := priceZip(t, engine, "90210", 1)
	assert.Equal(t, 17.50, q.Breakdown.Distance)
	assert.Equal(t, "Beverly Hills", q.City)
	assert.Equal(t, "CA", q.State)
	assert.Equal(t, etshipping.Currency, q.Currency)
	assert.Equal(t, FormulaZone, q.Algorithm)
	assert.NotEmpty(t, q.Factors)

	// weight does not move the zone formula
	assert.Equal(t, q.TotalCost, priceZip(t, engine, "90210", 40).TotalCost)
}

func TestZoneFormula_MonotoneInDistance(t *testing.T) {
	formula, _ := NewFormula(FormulaZone, DefaultRates())
	engine := NewPricingEngine(nil, formula, DefaultRates())

	prev := 0.0
	for miles := 0.0; miles <= 4000; miles += 25 {
		q := engine.Price(DistanceEstimate{Miles: miles}, 1, engine.LocalCarrierBase())
		assert.GreaterOrEqual(t, q.TotalCost, prev, "%.0f miles", miles)
		prev = q.TotalCost
	}
}

func TestItemizedFormula(t *testing.T) {
	formula, err := NewFormula(FormulaItemized, DefaultRates())
	require.NoError(t, err)
	engine := NewPricingEngine(nil, formula, DefaultRates())

	q := priceZip(t, engine, "90210", 3)
	assert.Equal(t, etshipping.Breakdown{
		Base:          8.50,
		Distance:      17.50,
		Weight:        1.50,
		FuelSurcharge: 3.15,
		Operational:   15.00,
		Geographic:    1.00,
		Seasonal:      1.00,
	}, q.Breakdown)
	assert.Equal(t, 47.65, q.TotalCost)

	remote := priceZip(t, engine, "99501", 1)
	assert.Equal(t, 12.00, remote.Breakdown.Geographic)
	assert.Equal(t, 0.0, remote.Breakdown.Weight)
	assert.Equal(t, 57.15, remote.TotalCost)

	local := priceZip(t, engine, "11550", 1)
	assert.Equal(t, 0.0, local.Breakdown.FuelSurcharge)
	assert.Equal(t, 25.50, local.TotalCost)
}

func TestItemizedFormula_PrefixFallback(t *testing.T) {
	formula, _ := NewFormula(FormulaItemized, DefaultRates())
	engine := NewPricingEngine(nil, formula, DefaultRates())

	est, err := fixtureEstimator(t).EstimateByPrefix("59999")
	require.NoError(t, err)
	q := engine.Price(est, 1, engine.LocalCarrierBase())

	assert.True(t, q.Estimated)
	assert.Equal(t, UnknownPlace, q.City)
	assert.Equal(t, 6, q.Zone)
	assert.Equal(t, 40.25, q.TotalCost)
}

func TestPricingEngine_CarrierBaseOverride(t *testing.T) {
	formula, _ := NewFormula(FormulaZone, DefaultRates())
	engine := NewPricingEngine(nil, formula, DefaultRates())

	est, err := fixtureEstimator(t).Estimate("90210")
	require.NoError(t, err)
	q := engine.Price(est, 1, 11.25)
	assert.Equal(t, 11.25, q.Breakdown.Base)
	assert.Equal(t, 43.75, q.TotalCost)
}
