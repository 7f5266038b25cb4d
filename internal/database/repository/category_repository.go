package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/query"
)

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(category *models.Category) error
	FindByID(id string) (*models.Category, error)
	List(filter query.Filter, opts query.Options) ([]models.Category, int64, error)
	Update(id string, fields map[string]interface{}) (*models.Category, error)
	Delete(id string) (*models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) FindByID(id string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(filter query.Filter, opts query.Options) ([]models.Category, int64, error) {
	var total int64
	if err := filter.Apply(r.db.Model(&models.Category{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []models.Category
	err := opts.Apply(filter.Apply(r.db.Model(&models.Category{}))).Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *categoryRepository) Update(id string, fields map[string]interface{}) (*models.Category, error) {
	category, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(category).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return category, nil
}

func (r *categoryRepository) Delete(id string) (*models.Category, error) {
	category, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Repository errors
var (
	ErrCategoryNotFound = errors.New("category not found")
)
