package request

import (
	"math"
	"strings"

	"storefront/internal/app/domains/entity/etcontent"
	"storefront/internal/app/domains/entity/etorder"
	"storefront/internal/app/domains/entity/etproduct"
	"storefront/internal/app/domains/entity/etshipping"
	"storefront/internal/app/domains/services/svorder"
)

// ToQuoteRequest converts the DTO to the domain request
func (r *ShippingQuoteRequest) ToQuoteRequest() etshipping.QuoteRequest {
	return etshipping.QuoteRequest{
		DestinationPostalCode: strings.TrimSpace(r.DestinationZip),
		DestinationCountry:    strings.TrimSpace(r.DestinationCountry),
		WeightLbs:             r.Weight,
	}
}

// ToDraft converts the DTO to a product draft
func (r *ProductRequest) ToDraft() etproduct.Draft {
	return etproduct.Draft{
		Slug:        r.Slug,
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  int64(math.Round(r.Price * 100)),
		Currency:    r.Currency,
		WeightLbs:   r.WeightLbs,
		Images:      r.Images,
		Sizes:       r.Sizes,
		Stock:       r.Stock,
		Active:      r.Active,
	}
}

// ToDraft converts the DTO to a content draft
func (r *ContentRequest) ToDraft() etcontent.Draft {
	return etcontent.Draft{
		Slug:       r.Slug,
		Title:      r.Title,
		Published:  r.Published,
		StartsAt:   r.StartsAt,
		Attributes: r.Attributes,
	}
}

// ToCheckoutInput converts the DTO to the checkout input
func (r *CheckoutRequest) ToCheckoutInput() svorder.CheckoutInput {
	items := make([]svorder.CheckoutItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, svorder.CheckoutItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Size:      it.Size,
		})
	}
	return svorder.CheckoutInput{
		Items: items,
		Customer: etorder.Customer{
			Name:  strings.TrimSpace(r.Customer.Name),
			Email: strings.TrimSpace(r.Customer.Email),
		},
		ShipTo: etorder.Address{
			Street1:    r.ShipTo.Street1,
			Street2:    r.ShipTo.Street2,
			City:       r.ShipTo.City,
			State:      r.ShipTo.State,
			PostalCode: strings.TrimSpace(r.ShipTo.PostalCode),
			Country:    strings.TrimSpace(r.ShipTo.Country),
		},
	}
}
