package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin is the one-to-one profile extension of an ADMIN/SUPER_ADMIN user.
// Soft deletion flips IsDeleted here and Status on the paired User row.
type Admin struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	ContactNumber string    `json:"contactNumber"`
	ProfilePhoto  *string   `json:"profilePhoto,omitempty"`
	IsDeleted     bool      `gorm:"not null" json:"isDeleted"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName overrides the table name
func (Admin) TableName() string {
	return "admins"
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
