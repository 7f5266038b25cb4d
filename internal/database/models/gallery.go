package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryImage records one uploaded media asset. StorageType says which
// backend holds the bytes; CloudKey or LocalPath is the backend locator.
type GalleryImage struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	OriginalName string    `gorm:"not null" json:"originalName"`
	URL          string    `gorm:"not null" json:"url"`
	StorageType  string    `gorm:"not null" json:"storageType"`
	CloudKey     *string   `json:"cloudKey,omitempty"`
	LocalPath    *string   `json:"localPath,omitempty"`
	Size         int64     `gorm:"not null" json:"size"`
	MimeType     string    `gorm:"not null" json:"mimeType"`
	Description  *string   `json:"description,omitempty"`
	IsActive     bool      `gorm:"not null" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName overrides the table name
func (GalleryImage) TableName() string {
	return "gallery_images"
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
