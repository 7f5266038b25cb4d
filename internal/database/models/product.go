package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductStatus string

const (
	ProductDraft      ProductStatus = "DRAFT"
	ProductPublished  ProductStatus = "PUBLISHED"
	ProductArchived   ProductStatus = "ARCHIVED"
	ProductOutOfStock ProductStatus = "OUT_OF_STOCK"
)

// Product is the catalog aggregate root. Slug is derived from the name and
// kept unique by suffixing a millisecond timestamp on collision. PublishedAt
// is set the first time the status becomes PUBLISHED and never cleared.
type Product struct {
	ID               string        `gorm:"primaryKey" json:"id"`
	Name             string        `gorm:"not null" json:"name"`
	Slug             string        `gorm:"uniqueIndex;not null" json:"slug"`
	Description      string        `json:"description"`
	ShortDescription string        `json:"shortDescription"`
	SKU              *string       `gorm:"column:sku;uniqueIndex" json:"sku,omitempty"`
	Barcode          *string       `json:"barcode,omitempty"`
	Price            float64       `gorm:"not null" json:"price"`
	SalePrice        *float64      `json:"salePrice,omitempty"`
	CostPrice        *float64      `json:"costPrice,omitempty"`
	Stock            int           `gorm:"not null;default:0" json:"stock"`
	MinStock         int           `gorm:"not null;default:0" json:"minStock"`
	MaxStock         *int          `json:"maxStock,omitempty"`
	TrackStock       bool          `gorm:"not null" json:"trackStock"`
	Status           ProductStatus `gorm:"not null;default:DRAFT" json:"status"`
	IsActive         bool          `gorm:"not null" json:"isActive"`
	IsFeatured       bool          `gorm:"not null" json:"isFeatured"`
	IsDigital        bool          `gorm:"not null" json:"isDigital"`
	Weight           *float64      `json:"weight,omitempty"`
	Dimensions       *string       `json:"dimensions,omitempty"`
	MetaTitle        *string       `json:"metaTitle,omitempty"`
	MetaDescription  *string       `json:"metaDescription,omitempty"`
	MetaKeywords     *string       `json:"metaKeywords,omitempty"`
	Thumbnail        *string       `json:"thumbnail,omitempty"`

	Images         datatypes.JSONSlice[string] `json:"images"`
	Attributes     datatypes.JSONMap           `json:"attributes"`
	Specifications datatypes.JSONMap           `json:"specifications"`

	CategoryID  string     `gorm:"not null;index" json:"categoryId"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Category *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
	Reviews  []ProductReview  `gorm:"foreignKey:ProductID" json:"reviews,omitempty"`
	Tags     []Tag            `gorm:"many2many:product_tags" json:"tags,omitempty"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
