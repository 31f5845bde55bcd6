package svshipping

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"storefront/internal/app/domains/entity/etshipping"
	"storefront/internal/app/domains/modules/mdshipping"
	"storefront/internal/app/infra/carrier"
	"storefront/internal/app/infra/postal"
	"storefront/internal/app/pkg/errorx"
	"storefront/internal/app/pkg/logger"
)

type fakeCarrier struct {
	rate  carrier.Rate
	err   error
	calls int
	last  carrier.RateRequest
}

func (f *fakeCarrier) Rate(_ context.Context, req carrier.RateRequest) (carrier.Rate, error) {
	f.calls++
	f.last = req
	return f.rate, f.err
}

type fakeCache struct {
	items  map[string]etshipping.Quote
	getErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: map[string]etshipping.Quote{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (*etshipping.Quote, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	q, ok := f.items[key]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (f *fakeCache) Set(_ context.Context, key string, q *etshipping.Quote) error {
	f.items[key] = *q
	return nil
}

func newService(t *testing.T, formula string, log logger.Logger, opts ...Option) *QuoteService {
	t.Helper()
	points, err := postal.Embedded(context.Background(), logger.NewNop())
	require.NoError(t, err)
	table, err := etshipping.NewPostalTable(points)
	require.NoError(t, err)

	est, err := mdshipping.NewDistanceEstimator(table, "11549")
	require.NoError(t, err)
	f, err := mdshipping.NewFormula(formula, mdshipping.DefaultRates())
	require.NoError(t, err)

	if log == nil {
		log = logger.NewNop()
	}
	return NewQuoteService(est, mdshipping.NewPricingEngine(nil, f, mdshipping.DefaultRates()), log, "3-5 business days", opts...)
}

func usRequest(zip string) etshipping.QuoteRequest {
	return etshipping.QuoteRequest{DestinationPostalCode: zip, DestinationCountry: "US"}
}

func TestQuote_ZoneScenarios(t *testing.T) {
	svc := newService(t, mdshipping.FormulaZone, nil)
	ctx := context.Background()

	origin, err := svc.Quote(ctx, usRequest("11549"))
	require.NoError(t, err)
	assert.Equal(t, 23.50, origin.TotalCost)
	assert.Equal(t, 0.0, origin.Breakdown.Distance)
	assert.InDelta(t, 0, origin.DistanceMiles, 0.01)

	bh, err := svc.Quote(ctx, usRequest("90210"))
	require.NoError(t, err)
	assert.Equal(t, 41.00, bh.TotalCost)
	assert.Equal(t, 8, bh.Zone)
	assert.Equal(t, "Beverly Hills", bh.City)
	assert.Equal(t, "CA", bh.State)
	assert.Equal(t, "3-5 business days", bh.EstimatedDelivery)
	assert.Equal(t, etshipping.RateSourceLocal, bh.RateSource)
	assert.Equal(t, "zone", bh.Algorithm)
}

func TestQuote_TotalEqualsBreakdownForEveryPostalCode(t *testing.T) {
	points, err := postal.Embedded(context.Background(), logger.NewNop())
	require.NoError(t, err)

	for _, formula := range []string{mdshipping.FormulaZone, mdshipping.FormulaItemized} {
		svc := newService(t, formula, nil)
		for _, p := range points {
			weight := 2.5
			q, err := svc.Quote(context.Background(), etshipping.QuoteRequest{
				DestinationPostalCode: p.Code,
				DestinationCountry:    "us",
				WeightLbs:             &weight,
			})
			require.NoError(t, err, "%s %s", formula, p.Code)
			assert.Equal(t, q.Breakdown.Total(), q.TotalCost, "%s %s", formula, p.Code)
			assert.GreaterOrEqual(t, q.TotalCost, 23.50, "%s %s", formula, p.Code)
		}
	}
}

func TestQuote_UnknownPostalCode(t *testing.T) {
	ctx := context.Background()

	_, err := newService(t, mdshipping.FormulaZone, nil).Quote(ctx, usRequest("59999"))
	var lookupErr *errorx.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "59999", lookupErr.PostalCode)

	q, err := newService(t, mdshipping.FormulaItemized, nil).Quote(ctx, usRequest("59999"))
	require.NoError(t, err)
	assert.True(t, q.Estimated)
	assert.Equal(t, mdshipping.UnknownPlace, q.City)
	assert.Equal(t, mdshipping.UnknownPlace, q.State)
	assert.Equal(t, q.Breakdown.Total(), q.TotalCost)
}

func TestQuote_ValidationShortCircuits(t *testing.T) {
	fc := &fakeCarrier{rate: carrier.Rate{Amount: 9}}
	svc := newService(t, mdshipping.FormulaZone, nil, WithCarrier(fc))

	_, err := svc.Quote(context.Background(), etshipping.QuoteRequest{DestinationPostalCode: "90210"})
	assert.ErrorAs(t, err, new(*errorx.ValidationError))

	_, err = svc.Quote(context.Background(), etshipping.QuoteRequest{DestinationPostalCode: "90210", DestinationCountry: "CA"})
	assert.ErrorAs(t, err, new(*errorx.UnsupportedRegionError))

	assert.Zero(t, fc.calls)
}

func TestQuote_CarrierRate(t *testing.T) {
	fc := &fakeCarrier{rate: carrier.Rate{Amount: 10.25, Currency: "USD"}}
	svc := newService(t, mdshipping.FormulaZone, nil, WithCarrier(fc))

	q, err := svc.Quote(context.Background(), usRequest("90210"))
	require.NoError(t, err)
	assert.Equal(t, etshipping.RateSourceCarrier, q.RateSource)
	assert.Equal(t, 10.25, q.Breakdown.Base)
	assert.Equal(t, 42.75, q.TotalCost)
	assert.Equal(t, carrier.RateRequest{OriginZip: "11549", DestinationZip: "90210", WeightLbs: 1}, fc.last)
}

func TestQuote_CarrierFailureFallsBack(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	fc := &fakeCarrier{err: errorx.NewUpstreamError("carrier", errors.New("timeout"))}
	svc := newService(t, mdshipping.FormulaZone, logger.NewFromZap(zap.New(core)), WithCarrier(fc))

	q, err := svc.Quote(context.Background(), usRequest("90210"))
	require.NoError(t, err)
	assert.Equal(t, 41.00, q.TotalCost)
	assert.Equal(t, etshipping.RateSourceLocal, q.RateSource)

	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "carrier rate unavailable")
}

func TestQuote_Cache(t *testing.T) {
	fc := &fakeCarrier{rate: carrier.Rate{Amount: 8.50}}
	cache := newFakeCache()
	svc := newService(t, mdshipping.FormulaZone, nil, WithCarrier(fc), WithCache(cache))
	ctx := context.Background()

	first, err := svc.Quote(ctx, usRequest("90210"))
	require.NoError(t, err)
	assert.Equal(t, etshipping.RateSourceCarrier, first.RateSource)
	assert.Contains(t, cache.items, "zone:90210:1.00")

	second, err := svc.Quote(ctx, usRequest("90210-4321"))
	require.NoError(t, err)
	assert.Equal(t, etshipping.RateSourceCache, second.RateSource)
	assert.Equal(t, first.TotalCost, second.TotalCost)
	assert.Equal(t, 1, fc.calls)
}

func TestQuote_CacheErrorsIgnored(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	svc := newService(t, mdshipping.FormulaZone, nil, WithCache(cache))

	q, err := svc.Quote(context.Background(), usRequest("10001"))
	require.NoError(t, err)
	assert.Equal(t, 23.50, q.TotalCost)
}

func TestQuote_CacheKeyMatchesPricedWeight(t *testing.T) {
	cache := newFakeCache()
	svc := newService(t, mdshipping.FormulaItemized, nil, WithCache(cache))
	ctx := context.Background()

	w1, w2 := 3.009, 3.011
	first, err := svc.Quote(ctx, etshipping.QuoteRequest{DestinationPostalCode: "90210", DestinationCountry: "US", WeightLbs: &w1})
	require.NoError(t, err)
	assert.Equal(t, 3.01, first.WeightLbs)
	assert.Contains(t, cache.items, "itemized:90210:3.01")

	second, err := svc.Quote(ctx, etshipping.QuoteRequest{DestinationPostalCode: "90210", DestinationCountry: "US", WeightLbs: &w2})
	require.NoError(t, err)
	assert.Equal(t, etshipping.RateSourceCache, second.RateSource)
	assert.Equal(t, first.TotalCost, second.TotalCost)
	assert.Equal(t, 3.01, second.WeightLbs)

	// an uncached run at the rounded weight prices the same
	fresh, err := newService(t, mdshipping.FormulaItemized, nil).Quote(ctx, etshipping.QuoteRequest{DestinationPostalCode: "90210", DestinationCountry: "US", WeightLbs: &w2})
	require.NoError(t, err)
	assert.Equal(t, first.TotalCost, fresh.TotalCost)
}
