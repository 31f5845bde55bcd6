package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Order checkout order with its line items, addresses and quote as JSON
type Order struct {
	ID              string         `gorm:"column:id;primaryKey;type:varchar(64)"`
	OrderNumber     string         `gorm:"column:order_number;type:varchar(32);not null;uniqueIndex:uk_order_number"`
	Email           string         `gorm:"column:email;type:varchar(255);not null;index:idx_order_email"`
	Status          string         `gorm:"column:status;type:varchar(24);not null;default:'PENDING_PAYMENT';index:idx_order_status"`
	SubtotalCents   int64          `gorm:"column:subtotal_cents;not null"`
	ShippingCents   int64          `gorm:"column:shipping_cents;not null"`
	TotalCents      int64          `gorm:"column:total_cents;not null"`
	Currency        string         `gorm:"column:currency;type:varchar(8);not null"`
	PaymentIntentID string         `gorm:"column:payment_intent_id;type:varchar(128);index:idx_order_payment_intent"`
	Items           datatypes.JSON `gorm:"column:items;type:json;not null"`
	Customer        datatypes.JSON `gorm:"column:customer;type:json;not null"`
	ShipTo          datatypes.JSON `gorm:"column:ship_to;type:json;not null"`
	ShippingQuote   datatypes.JSON `gorm:"column:shipping_quote;type:json"`
	CreatedAt       time.Time      `gorm:"column:created_at;not null;index:idx_order_created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;not null"`
}

// TableName table name
func (Order) TableName() string {
	return "orders"
}

// order statuses as stored
const (
	OrderStatusPendingPayment = "PENDING_PAYMENT"
	OrderStatusPaid           = "PAID"
	OrderStatusPaymentFailed  = "PAYMENT_FAILED"
)
