package mdshipping

import (
	"fmt"
	"math"

	"storefront/internal/app/domains/entity/etshipping"
	"storefront/internal/app/pkg/errorx"
)

// EarthRadiusMiles mean earth radius used by HaversineMiles
const EarthRadiusMiles = 3959.0

// HaversineMiles great-circle distance between two points in miles
func HaversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180.0 }
	dlat := rad(lat2 - lat1)
	dlon := rad(lon2 - lon1)
	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dlon/2)*math.Sin(dlon/2)
	// rounding can push a a hair above 1 for antipodal points
	a = math.Min(1, math.Max(0, a))
	return 2 * EarthRadiusMiles * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Between distance between two postal points in miles
func Between(from, to etshipping.PostalPoint) float64 {
	return HaversineMiles(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

// DistanceEstimate a resolved destination and its distance from the origin
type DistanceEstimate struct {
	Destination etshipping.PostalPoint
	Miles       float64 // rounded to two decimals
	Estimated   bool    // resolved by ZIP prefix instead of the table
}

// DistanceEstimator resolves destinations against the postal table and measures
// the distance from a fixed origin.
type DistanceEstimator struct {
	origin etshipping.PostalPoint
	table  *etshipping.PostalTable
}

// NewDistanceEstimator resolves originZip in table
func NewDistanceEstimator(table *etshipping.PostalTable, originZip string) (*DistanceEstimator, error) {
	origin, ok := table.Lookup(originZip)
	if !ok {
		return nil, fmt.Errorf("origin postal code %s not in reference table", originZip)
	}
	return &DistanceEstimator{origin: origin, table: table}, nil
}

// Origin the configured origin point
func (e *DistanceEstimator) Origin() etshipping.PostalPoint {
	return e.origin
}

// Lookup resolves a postal code without measuring
func (e *DistanceEstimator) Lookup(code string) (etshipping.PostalPoint, bool) {
	return e.table.Lookup(code)
}

// Estimate resolves code and returns its distance from the origin.
// Unknown codes return *errorx.LookupError.
func (e *DistanceEstimator) Estimate(code string) (DistanceEstimate, error) {
	dest, ok := e.table.Lookup(code)
	if !ok {
		return DistanceEstimate{}, &errorx.LookupError{PostalCode: code}
	}
	return DistanceEstimate{
		Destination: dest,
		Miles:       etshipping.RoundMoney(Between(e.origin, dest)),
	}, nil
}

// EstimateByPrefix approximates the distance to an unknown code from the
// centroid of its national ZIP area (first digit).
func (e *DistanceEstimator) EstimateByPrefix(code string) (DistanceEstimate, error) {
	centroid, ok := prefixCentroid(code)
	if !ok {
		return DistanceEstimate{}, &errorx.LookupError{PostalCode: code}
	}
	return DistanceEstimate{
		Destination: etshipping.PostalPoint{
			Code:      etshipping.NormalizePostalCode(code),
			Latitude:  centroid.lat,
			Longitude: centroid.lon,
			City:      UnknownPlace,
			State:     UnknownPlace,
		},
		Miles:     etshipping.RoundMoney(HaversineMiles(e.origin.Latitude, e.origin.Longitude, centroid.lat, centroid.lon)),
		Estimated: true,
	}, nil
}
