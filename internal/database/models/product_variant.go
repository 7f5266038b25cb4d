package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductVariant is a purchasable variation of a product (size, color, ...).
// Variants are replaced wholesale when a product update carries a variant
// list.
type ProductVariant struct {
	ID         string            `gorm:"primaryKey" json:"id"`
	ProductID  string            `gorm:"not null;index" json:"productId"`
	Name       string            `gorm:"not null" json:"name"`
	SKU        *string           `gorm:"column:sku" json:"sku,omitempty"`
	Price      *float64          `json:"price,omitempty"`
	SalePrice  *float64          `json:"salePrice,omitempty"`
	Stock      int               `gorm:"not null;default:0" json:"stock"`
	Attributes datatypes.JSONMap `json:"attributes"`
	IsActive   bool              `gorm:"not null" json:"isActive"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// TableName overrides the table name
func (ProductVariant) TableName() string {
	return "product_variants"
}

func (v *ProductVariant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
