package etorder

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"storefront/internal/app/domains/entity/etshipping"
)

var (
	ErrInvalidOrderID     = errors.New("order ID cannot be empty")
	ErrInvalidOrderNumber = errors.New("order number cannot be empty")
	ErrEmptyItems         = errors.New("order needs at least one item")
	ErrNilQuote           = errors.New("shipping quote cannot be nil")
)

// Status order lifecycle
type Status string

const (
	StatusPendingPayment Status = "PENDING_PAYMENT"
	StatusPaid           Status = "PAID"
	StatusPaymentFailed  Status = "PAYMENT_FAILED"
)

// Order checkout order (aggregate root)
type Order struct {
	ID              string
	OrderNumber     string
	Customer        Customer
	ShipTo          Address
	Items           []Item
	SubtotalCents   int64
	ShippingCents   int64
	TotalCents      int64
	Currency        string
	PaymentIntentID string
	Status          Status
	ShippingQuote   *etshipping.Quote
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Customer buyer contact (value object)
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Address shipping address (value object)
type Address struct {
	Street1    string `json:"street1"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Item order line, prices frozen at checkout (value object)
type Item struct {
	ProductID      string  `json:"product_id"`
	Slug           string  `json:"slug"`
	Name           string  `json:"name"`
	Size           string  `json:"size,omitempty"`
	Quantity       int     `json:"quantity"`
	UnitPriceCents int64   `json:"unit_price_cents"`
	WeightLbs      float64 `json:"weight_lbs"`
}

// LineTotalCents unit price times quantity
func (i Item) LineTotalCents() int64 {
	return i.UnitPriceCents * int64(i.Quantity)
}

// TotalWeight parcel weight of items
func TotalWeight(items []Item) float64 {
	w := 0.0
	for _, it := range items {
		w += it.WeightLbs * float64(it.Quantity)
	}
	return w
}

// ToCents converts a currency amount to cents
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// NewOrder creates a pending order priced from items and quote
func NewOrder(id, number string, customer Customer, shipTo Address, items []Item, quote *etshipping.Quote, now time.Time) (*Order, error) {
	switch {
	case id == "":
		return nil, ErrInvalidOrderID
	case number == "":
		return nil, ErrInvalidOrderNumber
	case len(items) == 0:
		return nil, ErrEmptyItems
	case quote == nil:
		return nil, ErrNilQuote
	}

	var subtotal int64
	for _, it := range items {
		subtotal += it.LineTotalCents()
	}
	shipping := ToCents(quote.TotalCost)

	return &Order{
		ID:            id,
		OrderNumber:   number,
		Customer:      customer,
		ShipTo:        shipTo,
		Items:         items,
		SubtotalCents: subtotal,
		ShippingCents: shipping,
		TotalCents:    subtotal + shipping,
		Currency:      strings.ToUpper(quote.Currency),
		Status:        StatusPendingPayment,
		ShippingQuote: quote,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Transition moves the order to next. Repeating the current status is a no-op;
// settled orders cannot change.
func (o *Order) Transition(next Status, now time.Time) (changed bool, err error) {
	if o.Status == next {
		return false, nil
	}
	if o.Status != StatusPendingPayment {
		return false, fmt.Errorf("order %s is %s, cannot become %s", o.ID, o.Status, next)
	}
	o.Status = next
	o.UpdatedAt = now
	return true, nil
}
