package etshipping

import "math"

// Currency all shipping amounts are quoted in
const Currency = "USD"

// DefaultWeightLbs weight assumed when the request omits it
const DefaultWeightLbs = 1.0

// QuoteRequest a request for a shipping price
type QuoteRequest struct {
	DestinationPostalCode string
	DestinationCountry    string
	WeightLbs             *float64
}

// Weight returns the requested weight or DefaultWeightLbs
func (r QuoteRequest) Weight() float64 {
	if r.WeightLbs == nil {
		return DefaultWeightLbs
	}
	return *r.WeightLbs
}

// Breakdown components of a shipping price
type Breakdown struct {
	Base          float64 `json:"base"`
	Distance      float64 `json:"distance"`
	Weight        float64 `json:"weight"`
	FuelSurcharge float64 `json:"fuelSurcharge"`
	Operational   float64 `json:"operational"`
	Geographic    float64 `json:"geographic"`
	Seasonal      float64 `json:"seasonal"`
}

// Rounded every component rounded to cents
func (b Breakdown) Rounded() Breakdown {
	return Breakdown{
		Base:          RoundMoney(b.Base),
		Distance:      RoundMoney(b.Distance),
		Weight:        RoundMoney(b.Weight),
		FuelSurcharge: RoundMoney(b.FuelSurcharge),
		Operational:   RoundMoney(b.Operational),
		Geographic:    RoundMoney(b.Geographic),
		Seasonal:      RoundMoney(b.Seasonal),
	}
}

// Total sum of all components rounded to cents
func (b Breakdown) Total() float64 {
	return RoundMoney(b.Base + b.Distance + b.Weight + b.FuelSurcharge + b.Operational + b.Geographic + b.Seasonal)
}

// RateSource where the carrier base came from
type RateSource string

const (
	RateSourceLocal   RateSource = "local"
	RateSourceCarrier RateSource = "carrier"
	RateSourceCache   RateSource = "cache"
)

// Quote a computed shipping price
type Quote struct {
	TotalCost         float64    `json:"totalCost"`
	Breakdown         Breakdown  `json:"breakdown"`
	DistanceMiles     float64    `json:"distanceMiles"`
	Zone              int        `json:"zone"`
	ZoneName          string     `json:"zoneName"`
	City              string     `json:"city"`
	State             string     `json:"state"`
	PostalCode        string     `json:"postalCode"`
	WeightLbs         float64    `json:"weightLbs"`
	Currency          string     `json:"currency"`
	EstimatedDelivery string     `json:"estimatedDelivery"`
	Algorithm         string     `json:"algorithm"`
	Factors           []string   `json:"factors"`
	RateSource        RateSource `json:"rateSource"`
	Estimated         bool       `json:"estimated"` // destination resolved by ZIP prefix, not the table
}

// RoundMoney rounds to two decimals, half away from zero
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
