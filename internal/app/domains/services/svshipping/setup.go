package svshipping

import (
	"context"
	"fmt"

	"storefront/internal/app/config"
	"storefront/internal/app/domains/modules/mdshipping"
	"storefront/internal/app/infra/postal"
	"storefront/internal/app/pkg/logger"
)

// RatesFromConfig maps the shipping section onto pricing rates
func RatesFromConfig(cfg config.ShippingConfig) mdshipping.Rates {
	return mdshipping.Rates{
		CarrierBase:      cfg.CarrierBase,
		Overhead:         cfg.Overhead,
		FuelRate:         cfg.FuelRate,
		PerPound:         cfg.PerPound,
		Geographic:       cfg.Geographic,
		RemoteGeographic: cfg.RemoteGeographic,
		Seasonal:         cfg.Seasonal,
	}
}

// Setup loads the postal table and builds a QuoteService from cfg
func Setup(ctx context.Context, cfg *config.Config, log logger.Logger, opts ...Option) (*QuoteService, error) {
	table, err := postal.Load(ctx, cfg.Postal, log)
	if err != nil {
		return nil, fmt.Errorf("load postal table failed: %w", err)
	}

	estimator, err := mdshipping.NewDistanceEstimator(table, cfg.Shipping.OriginZip)
	if err != nil {
		return nil, err
	}

	rates := RatesFromConfig(cfg.Shipping)
	formula, err := mdshipping.NewFormula(cfg.Shipping.Formula, rates)
	if err != nil {
		return nil, err
	}

	engine := mdshipping.NewPricingEngine(nil, formula, rates)
	return NewQuoteService(estimator, engine, log, cfg.Shipping.EstimatedDelivery, opts...), nil
}
