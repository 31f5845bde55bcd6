package svshipping

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/app/domains/entity/etshipping"
	"storefront/internal/app/domains/modules/mdshipping"
	"storefront/internal/app/infra/carrier"
	"storefront/internal/app/pkg/errorx"
	"storefront/internal/app/pkg/logger"
)

// QuoteCache optional store of computed quotes
type QuoteCache interface {
	Get(ctx context.Context, key string) (*etshipping.Quote, error)
	Set(ctx context.Context, key string, q *etshipping.Quote) error
}

// QuoteService shipping quote orchestration
type QuoteService struct {
	estimator         *mdshipping.DistanceEstimator
	engine            *mdshipping.PricingEngine
	carrier           carrier.Client
	cache             QuoteCache
	log               logger.Logger
	estimatedDelivery string
}

// Option configures optional collaborators of QuoteService
type Option func(*QuoteService)

// WithCarrier prices the carrier base with live rates
func WithCarrier(c carrier.Client) Option {
	return func(s *QuoteService) { s.carrier = c }
}

// WithCache caches quotes
func WithCache(c QuoteCache) Option {
	return func(s *QuoteService) { s.cache = c }
}

// NewQuoteService creates the quote service
func NewQuoteService(
	estimator *mdshipping.DistanceEstimator,
	engine *mdshipping.PricingEngine,
	log logger.Logger,
	estimatedDelivery string,
	opts ...Option,
) *QuoteService {
	s := &QuoteService{
		estimator:         estimator,
		engine:            engine,
		log:               log,
		estimatedDelivery: estimatedDelivery,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Formula the active pricing formula
func (s *QuoteService) Formula() mdshipping.Formula {
	return s.engine.Formula()
}

// Quote prices a parcel to the requested destination
// 1. validate the request
// 2. serve from cache when possible
// 3. resolve the destination, by ZIP prefix when the formula allows it
// 4. fetch the carrier base, falling back to the local base
// 5. price and cache
func (s *QuoteService) Quote(ctx context.Context, req etshipping.QuoteRequest) (*etshipping.Quote, error) {
	req, err := mdshipping.ValidateQuoteRequest(req)
	if err != nil {
		return nil, err
	}
	zip := req.DestinationPostalCode
	weight := req.Weight()
	key := quoteCacheKey(s.engine.Formula().Name(), zip, weight)

	if cached := s.cached(ctx, key); cached != nil {
		return cached, nil
	}

	est, err := s.resolve(zip)
	if err != nil {
		return nil, err
	}

	base, source := s.carrierBase(ctx, zip, weight)

	quote := s.engine.Price(est, weight, base)
	quote.RateSource = source
	quote.EstimatedDelivery = s.estimatedDelivery

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, &quote); err != nil {
			s.log.Warnf(ctx, "cache quote failed: key=%s, error=%v", key, err)
		}
	}

	return &quote, nil
}

func (s *QuoteService) cached(ctx context.Context, key string) *etshipping.Quote {
	if s.cache == nil {
		return nil
	}
	q, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warnf(ctx, "read quote cache failed: key=%s, error=%v", key, err)
		return nil
	}
	if q == nil {
		return nil
	}
	q.RateSource = etshipping.RateSourceCache
	return q
}

func (s *QuoteService) resolve(zip string) (mdshipping.DistanceEstimate, error) {
	est, err := s.estimator.Estimate(zip)
	if err == nil {
		return est, nil
	}

	var lookupErr *errorx.LookupError
	if !errors.As(err, &lookupErr) || !s.engine.Formula().FallbackOnUnknown() {
		return est, err
	}
	return s.estimator.EstimateByPrefix(zip)
}

// carrierBase never fails: upstream errors are logged and the local base is used
func (s *QuoteService) carrierBase(ctx context.Context, zip string, weight float64) (float64, etshipping.RateSource) {
	local := s.engine.LocalCarrierBase()
	if s.carrier == nil {
		return local, etshipping.RateSourceLocal
	}

	rate, err := s.carrier.Rate(ctx, carrier.RateRequest{
		OriginZip:      s.estimator.Origin().Code,
		DestinationZip: zip,
		WeightLbs:      weight,
	})
	if err != nil {
		s.log.Warnf(ctx, "carrier rate unavailable, using local base %.2f: %v", local, err)
		return local, etshipping.RateSourceLocal
	}
	return rate.Amount, etshipping.RateSourceCarrier
}

func quoteCacheKey(formula, zip string, weight float64) string {
	return fmt.Sprintf("%s:%s:%.2f", formula, zip, weight)
}
