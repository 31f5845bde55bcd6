package shipping

import "storefront/internal/app/domains/services/svshipping"

// ShippingHandler shipping HTTP handler
type ShippingHandler struct {
	quoteService *svshipping.QuoteService
}

// NewShippingHandler creates the handler
func NewShippingHandler(quoteService *svshipping.QuoteService) *ShippingHandler {
	return &ShippingHandler{quoteService: quoteService}
}
