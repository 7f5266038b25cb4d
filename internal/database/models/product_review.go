package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductReview is a customer review. Reviews start unapproved and only
// approved ones are served on the public product read paths.
type ProductReview struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	ProductID     string    `gorm:"not null;index" json:"productId"`
	Rating        int       `gorm:"not null" json:"rating"`
	Title         *string   `json:"title,omitempty"`
	Comment       string    `gorm:"not null" json:"comment"`
	ReviewerName  string    `gorm:"not null" json:"reviewerName"`
	ReviewerEmail string    `gorm:"not null" json:"reviewerEmail"`
	IsApproved    bool      `gorm:"not null" json:"isApproved"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName overrides the table name
func (ProductReview) TableName() string {
	return "product_reviews"
}

func (r *ProductReview) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
