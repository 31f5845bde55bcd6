package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Product merchandise row; descriptive fields live in the JSON body
type Product struct {
	ID         string         `gorm:"column:id;primaryKey;type:varchar(64)"`
	Slug       string         `gorm:"column:slug;type:varchar(128);not null;uniqueIndex:uk_product_slug"`
	Name       string         `gorm:"column:name;type:varchar(255);not null"`
	PriceCents int64          `gorm:"column:price_cents;not null"`
	Currency   string         `gorm:"column:currency;type:varchar(8);not null;default:'USD'"`
	Stock      int            `gorm:"column:stock;not null;default:0"`
	Active     bool           `gorm:"column:active;not null;default:true;index:idx_product_active"`
	Body       datatypes.JSON `gorm:"column:body;type:json"`
	CreatedAt  time.Time      `gorm:"column:created_at;not null;index:idx_product_created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;not null"`
}

// TableName table name
func (Product) TableName() string {
	return "products"
}
