package mdshipping

import (
	"fmt"
	"math"
	"strings"

	"storefront/internal/app/domains/entity/etshipping"
)

// formula names accepted by NewFormula
const (
	FormulaZone     = "zone"
	FormulaItemized = "itemized"
)

// Rates monetary constants shared by the formulas
type Rates struct {
	CarrierBase      float64
	Overhead         float64
	FuelRate         float64
	PerPound         float64
	Geographic       float64
	RemoteGeographic float64
	Seasonal         float64
}

// DefaultRates the rates the store ships with
func DefaultRates() Rates {
	return Rates{
		CarrierBase:      8.50,
		Overhead:         15.00,
		FuelRate:         0.18,
		PerPound:         0.75,
		Geographic:       1.00,
		RemoteGeographic: 12.00,
		Seasonal:         1.00,
	}
}

// PriceInput everything a formula needs to price one parcel
type PriceInput struct {
	PostalCode  string
	Miles       float64
	Zone        etshipping.ZoneRule
	WeightLbs   float64
	CarrierBase float64
}

// Formula turns a priced input into a breakdown
type Formula interface {
	Name() string
	Factors() []string
	// FallbackOnUnknown reports whether unknown destinations are priced from a
	// ZIP-prefix estimate instead of failing.
	FallbackOnUnknown() bool
	Price(in PriceInput) etshipping.Breakdown
}

// NewFormula builds the formula registered under name
func NewFormula(name string, rates Rates) (Formula, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormulaZone:
		return &ZoneFormula{rates: rates}, nil
	case FormulaItemized:
		return &ItemizedFormula{rates: rates}, nil
	default:
		return nil, fmt.Errorf("unknown pricing formula %q", name)
	}
}

// ZoneFormula carrier base plus fixed overhead plus the zone cost
type ZoneFormula struct {
	rates Rates
}

func (f *ZoneFormula) Name() string { return FormulaZone }

func (f *ZoneFormula) Factors() []string {
	return []string{"carrier_base", "handling_overhead", "distance_zone"}
}

func (f *ZoneFormula) FallbackOnUnknown() bool { return false }

func (f *ZoneFormula) Price(in PriceInput) etshipping.Breakdown {
	return etshipping.Breakdown{
		Base:        in.CarrierBase,
		Distance:    in.Zone.Surcharge,
		Operational: f.rates.Overhead,
	}.Rounded()
}

// ItemizedFormula every component priced separately
type ItemizedFormula struct {
	rates Rates
}

func (f *ItemizedFormula) Name() string { return FormulaItemized }

func (f *ItemizedFormula) Factors() []string {
	return []string{"carrier_base", "distance_zone", "weight", "fuel_surcharge", "handling_overhead", "geographic", "seasonal"}
}

func (f *ItemizedFormula) FallbackOnUnknown() bool { return true }

func (f *ItemizedFormula) Price(in PriceInput) etshipping.Breakdown {
	geographic := f.rates.Geographic
	if IsRemotePrefix(in.PostalCode) {
		geographic = f.rates.RemoteGeographic
	}
	// first pound is included in the base
	extra := math.Max(0, in.WeightLbs-etshipping.DefaultWeightLbs)

	return etshipping.Breakdown{
		Base:          in.CarrierBase,
		Distance:      in.Zone.Surcharge,
		Weight:        f.rates.PerPound * extra,
		FuelSurcharge: f.rates.FuelRate * in.Zone.Surcharge,
		Operational:   f.rates.Overhead,
		Geographic:    geographic,
		Seasonal:      f.rates.Seasonal,
	}.Rounded()
}

// PricingEngine prices resolved destinations with one formula over one zone table.
// It holds no mutable state.
type PricingEngine struct {
	zones   *etshipping.ZoneTable
	formula Formula
	rates   Rates
}

// NewPricingEngine engine over zones using formula
func NewPricingEngine(zones *etshipping.ZoneTable, formula Formula, rates Rates) *PricingEngine {
	if zones == nil {
		zones = etshipping.DefaultZoneTable()
	}
	return &PricingEngine{zones: zones, formula: formula, rates: rates}
}

// Formula the active formula
func (p *PricingEngine) Formula() Formula {
	return p.formula
}

// LocalCarrierBase carrier base used when no live rate is available
func (p *PricingEngine) LocalCarrierBase() float64 {
	return p.rates.CarrierBase
}

// Price builds a quote for est. carrierBase replaces the local base when a
// live carrier rate was obtained.
func (p *PricingEngine) Price(est DistanceEstimate, weightLbs, carrierBase float64) etshipping.Quote {
	zone := p.zones.Lookup(est.Miles)
	breakdown := p.formula.Price(PriceInput{
		PostalCode:  est.Destination.Code,
		Miles:       est.Miles,
		Zone:        zone,
		WeightLbs:   weightLbs,
		CarrierBase: carrierBase,
	})

	return etshipping.Quote{
		TotalCost:     breakdown.Total(),
		Breakdown:     breakdown,
		DistanceMiles: est.Miles,
		Zone:          zone.Zone,
		ZoneName:      zone.Name,
		City:          est.Destination.City,
		State:         est.Destination.State,
		PostalCode:    est.Destination.Code,
		WeightLbs:     weightLbs,
		Currency:      etshipping.Currency,
		Algorithm:     p.formula.Name(),
		Factors:       p.formula.Factors(),
		Estimated:     est.Estimated,
	}
}
