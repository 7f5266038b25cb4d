package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/query"
)

// GalleryRepository defines the interface for gallery image data operations
type GalleryRepository interface {
	Create(image *models.GalleryImage) error
	FindByID(id string) (*models.GalleryImage, error)
	List(filter query.Filter, opts query.Options) ([]models.GalleryImage, int64, error)
	Update(id string, fields map[string]interface{}) (*models.GalleryImage, error)
	Delete(id string) (*models.GalleryImage, error)
	FindByIDs(ids []string) ([]models.GalleryImage, error)
	DeleteByIDs(ids []string) (int64, error)
}

type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository creates a new gallery repository instance
func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(image *models.GalleryImage) error {
	return r.db.Create(image).Error
}

func (r *galleryRepository) FindByID(id string) (*models.GalleryImage, error) {
	var image models.GalleryImage
	err := r.db.Where("id = ?", id).First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (r *galleryRepository) List(filter query.Filter, opts query.Options) ([]models.GalleryImage, int64, error) {
	var total int64
	if err := filter.Apply(r.db.Model(&models.GalleryImage{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var images []models.GalleryImage
	err := opts.Apply(filter.Apply(r.db.Model(&models.GalleryImage{}))).Find(&images).Error
	if err != nil {
		return nil, 0, err
	}
	return images, total, nil
}

func (r *galleryRepository) Update(id string, fields map[string]interface{}) (*models.GalleryImage, error) {
	image, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(image).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return image, nil
}

func (r *galleryRepository) Delete(id string) (*models.GalleryImage, error) {
	image, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(image).Error; err != nil {
		return nil, err
	}
	return image, nil
}

func (r *galleryRepository) FindByIDs(ids []string) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	if err := r.db.Where("id IN ?", ids).Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *galleryRepository) DeleteByIDs(ids []string) (int64, error) {
	result := r.db.Delete(&models.GalleryImage{}, "id IN ?", ids)
	return result.RowsAffected, result.Error
}

// Repository errors
var (
	ErrImageNotFound = errors.New("gallery image not found")
)
