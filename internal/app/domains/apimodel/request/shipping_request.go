package request

// ShippingQuoteRequest shipping quote request (DTO).
// Required fields are checked by the shipping validation so every caller gets the same errors.
type ShippingQuoteRequest struct {
	DestinationZip     string   `json:"destinationZip" example:"90210"`
	DestinationCountry string   `json:"destinationCountry" example:"US"`
	Weight             *float64 `json:"weight,omitempty" example:"2.5"`
}
