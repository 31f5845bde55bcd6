package response

import (
	"time"

	"storefront/internal/app/domains/entity/etorder"
	"storefront/internal/app/domains/services/svorder"
)

// OrderResponse order (DTO); amounts are in cents
type OrderResponse struct {
	ID            string           `json:"id"`
	OrderNumber   string           `json:"order_number"`
	Status        string           `json:"status"`
	Customer      etorder.Customer `json:"customer"`
	ShipTo        etorder.Address  `json:"ship_to"`
	Items         []etorder.Item   `json:"items"`
	SubtotalCents int64            `json:"subtotal_cents"`
	ShippingCents int64            `json:"shipping_cents"`
	TotalCents    int64            `json:"total_cents"`
	Currency      string           `json:"currency"`
	ShippingZone  string           `json:"shipping_zone,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// CheckoutResponse created order plus the payment client secret
type CheckoutResponse struct {
	*OrderResponse
	ClientSecret string `json:"client_secret"`
}

// FromOrderEntity converts an order
func FromOrderEntity(o *etorder.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		Status:        string(o.Status),
		Customer:      o.Customer,
		ShipTo:        o.ShipTo,
		Items:         o.Items,
		SubtotalCents: o.SubtotalCents,
		ShippingCents: o.ShippingCents,
		TotalCents:    o.TotalCents,
		Currency:      o.Currency,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if o.ShippingQuote != nil {
		resp.ShippingZone = o.ShippingQuote.ZoneName
	}
	return resp
}

// FromOrderEntities converts an order list
func FromOrderEntities(orders []*etorder.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrderEntity(o))
	}
	return out
}

// FromCheckoutResult converts a checkout result
func FromCheckoutResult(r *svorder.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		OrderResponse: FromOrderEntity(r.Order),
		ClientSecret:  r.ClientSecret,
	}
}
