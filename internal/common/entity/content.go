package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Content site document: news post, roster member or scheduled match
type Content struct {
	ID        string         `gorm:"column:id;primaryKey;type:varchar(64)"`
	Kind      string         `gorm:"column:kind;type:varchar(16);not null;uniqueIndex:uk_content_kind_slug;index:idx_content_kind_starts"`
	Slug      string         `gorm:"column:slug;type:varchar(128);not null;uniqueIndex:uk_content_kind_slug"`
	Title     string         `gorm:"column:title;type:varchar(255);not null"`
	Published bool           `gorm:"column:published;not null;default:true"`
	StartsAt  *time.Time     `gorm:"column:starts_at;index:idx_content_kind_starts"`
	Body      datatypes.JSON `gorm:"column:body;type:json"`
	CreatedAt time.Time      `gorm:"column:created_at;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null"`
}

// TableName table name
func (Content) TableName() string {
	return "contents"
}
