package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/query"
)

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	Create(tag *models.Tag) error
	SlugExists(slug string) (bool, error)
	FindByID(id string) (*models.Tag, error)
	List(filter query.Filter, opts query.Options) ([]models.Tag, int64, error)
	FindOrCreateByNames(names []string, slugify func(string) string) ([]models.Tag, error)
	Update(tag *models.Tag) error
	Delete(id string) (*models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository instance
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *tagRepository) FindByID(id string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("id = ?", id).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) List(filter query.Filter, opts query.Options) ([]models.Tag, int64, error) {
	var total int64
	if err := filter.Apply(r.db.Model(&models.Tag{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tags []models.Tag
	if err := opts.Apply(filter.Apply(r.db.Model(&models.Tag{}))).Find(&tags).Error; err != nil {
		return nil, 0, err
	}
	return tags, total, nil
}

// FindOrCreateByNames resolves tag names to rows, creating missing ones with
// a slug derived by the given function. Existing tags are matched by name.
func (r *tagRepository) FindOrCreateByNames(names []string, slugify func(string) string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		err := r.db.Where("name = ?", name).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{Name: name, Slug: slugify(name)}
			err = r.db.Create(&tag).Error
		}
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (r *tagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

func (r *tagRepository) Delete(id string) (*models.Tag, error) {
	tag, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM product_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(tag).Error
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// Repository errors
var (
	ErrTagNotFound = errors.New("tag not found")
)
