package models

import (
	"github.com/shopspring/decimal"
)

const (
	// PriceScale is the number of fractional digits stored for a price.
	PriceScale int32 = 2
	// RatingScale is the number of fractional digits stored for a rating.
	RatingScale int32 = 1
)

// Product represents a product in the catalog.
// It always belongs to exactly one category.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:100;not null"`
	Description *string         `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Rating      decimal.Decimal `gorm:"type:decimal(3,1);not null"`
	CategoryID  uint            `gorm:"not null;index"`
	Category    Category        `gorm:"foreignKey:CategoryID"`
}

func (p *Product) TableName() string {
	return "products"
}
