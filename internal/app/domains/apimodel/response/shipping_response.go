package response

import "storefront/internal/app/domains/entity/etshipping"

// ShippingQuoteResponse quote response; fields sit at the top level next to success
type ShippingQuoteResponse struct {
	Success           bool                 `json:"success"`
	ShippingCost      float64              `json:"shippingCost"`
	Breakdown         etshipping.Breakdown `json:"breakdown"`
	Distance          float64              `json:"distance"`
	City              string               `json:"city"`
	State             string               `json:"state"`
	Zone              string               `json:"zone"`
	Currency          string               `json:"currency"`
	EstimatedDelivery string               `json:"estimatedDelivery"`
	Algorithm         string               `json:"algorithm"`
	Factors           []string             `json:"factors"`
	RateSource        string               `json:"rateSource"`
	Estimated         bool                 `json:"estimated,omitempty"`
}

// FromQuote converts a domain quote
func FromQuote(q *etshipping.Quote) *ShippingQuoteResponse {
	return &ShippingQuoteResponse{
		Success:           true,
		ShippingCost:      q.TotalCost,
		Breakdown:         q.Breakdown,
		Distance:          q.DistanceMiles,
		City:              q.City,
		State:             q.State,
		Zone:              q.ZoneName,
		Currency:          q.Currency,
		EstimatedDelivery: q.EstimatedDelivery,
		Algorithm:         q.Algorithm,
		Factors:           q.Factors,
		RateSource:        string(q.RateSource),
		Estimated:         q.Estimated,
	}
}
