package mdshipping

import (
	"math"
	"strings"

	"storefront/internal/app/domains/entity/etshipping"
	"storefront/internal/app/pkg/errorx"
)

// ValidateUSShipping reports whether country is the United States
func ValidateUSShipping(country string) bool {
	return strings.EqualFold(strings.TrimSpace(country), "US")
}

// ValidateQuoteRequest checks and normalizes a quote request. It runs before
// any lookup or pricing. Malformed postal codes fail as
// *errorx.LookupError, the same as unknown ones.
func ValidateQuoteRequest(req etshipping.QuoteRequest) (etshipping.QuoteRequest, error) {
	zip := etshipping.NormalizePostalCode(req.DestinationPostalCode)
	country := strings.TrimSpace(req.DestinationCountry)

	if zip == "" {
		return req, errorx.NewValidationError("destinationZip", "is required")
	}
	if country == "" {
		return req, errorx.NewValidationError("destinationCountry", "is required")
	}
	if !ValidateUSShipping(country) {
		return req, &errorx.UnsupportedRegionError{Country: country}
	}
	if !isZip5(zip) {
		return req, &errorx.LookupError{PostalCode: zip}
	}
	var weight *float64
	if req.WeightLbs != nil {
		w := *req.WeightLbs
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return req, errorx.NewValidationError("weight", "must be greater than 0")
		}
		w = normalizeWeight(w)
		weight = &w
	}

	return etshipping.QuoteRequest{
		DestinationPostalCode: zip,
		DestinationCountry:    strings.ToUpper(country),
		WeightLbs:             weight,
	}, nil
}

// normalizeWeight rounds to hundredths of a pound, the precision quotes are
// priced and cached at. Positive weights never round to zero.
func normalizeWeight(w float64) float64 {
	w = etshipping.RoundMoney(w)
	if w < minWeightLbs {
		return minWeightLbs
	}
	return w
}

const minWeightLbs = 0.01
