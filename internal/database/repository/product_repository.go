package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/query"
)

// ProductRepository defines the interface for product data operations,
// including variants and reviews which live inside the product aggregate.
type ProductRepository interface {
	Create(product *models.Product) error
	SlugExists(slug string) (bool, error)
	FindByID(id string) (*models.Product, error)
	FindBySlug(slug string) (*models.Product, error)
	List(filter query.Filter, opts query.Options) ([]models.Product, int64, error)
	Related(productID, categoryID string, limit int) ([]models.Product, error)
	Update(product *models.Product) error
	UpdateFields(id string, fields map[string]interface{}) error
	ReplaceVariants(productID string, variants []models.ProductVariant) error
	ReplaceTags(product *models.Product, tags []models.Tag) error
	Delete(id string) (*models.Product, error)

	CreateVariant(variant *models.ProductVariant) error
	FindVariantByID(id string) (*models.ProductVariant, error)
	ListVariants(productID string) ([]models.ProductVariant, error)
	UpdateVariant(variant *models.ProductVariant) error
	DeleteVariant(id string) (*models.ProductVariant, error)

	CreateReview(review *models.ProductReview) error
	ListReviews(productID string, approvedOnly bool) ([]models.ProductReview, error)
	UpdateReviewStatus(id string, approved bool) (*models.ProductReview, error)
	DeleteReview(id string) (*models.ProductReview, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *productRepository) FindByID(id string) (*models.Product, error) {
	return r.findOne("id = ?", id)
}

func (r *productRepository) FindBySlug(slug string) (*models.Product, error) {
	return r.findOne("slug = ?", slug)
}

// findOne loads the full aggregate. Only approved reviews are attached.
func (r *productRepository) findOne(cond string, value string) (*models.Product, error) {
	var product models.Product
	err := r.db.
		Preload("Category").
		Preload("Variants").
		Preload("Tags").
		Preload("Reviews", "is_approved = ?", true).
		Where(cond, value).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(filter query.Filter, opts query.Options) ([]models.Product, int64, error) {
	var total int64
	if err := filter.Apply(r.db.Model(&models.Product{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := opts.Apply(filter.Apply(r.db.Model(&models.Product{}))).
		Preload("Category").
		Preload("Tags").
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) Related(productID, categoryID string, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Preload("Category").
		Where("category_id = ? AND id <> ? AND status = ? AND is_active = ?",
			categoryID, productID, models.ProductPublished, true).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Omit("Tags", "Variants", "Reviews", "Category").Save(product).Error
}

func (r *productRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&models.Product{}).Where("id = ?", id).Updates(fields).Error
}

// ReplaceVariants drops all variants of a product and writes the given set.
func (r *productRepository) ReplaceVariants(productID string, variants []models.ProductVariant) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&models.ProductVariant{}).Error; err != nil {
			return err
		}
		if len(variants) == 0 {
			return nil
		}
		for i := range variants {
			variants[i].ProductID = productID
		}
		return tx.Create(&variants).Error
	})
}

func (r *productRepository) ReplaceTags(product *models.Product, tags []models.Tag) error {
	return r.db.Model(product).Association("Tags").Replace(tags)
}

// Delete removes the product and its owned rows in one transaction.
func (r *productRepository) Delete(id string) (*models.Product, error) {
	product, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductVariant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductReview{}).Error; err != nil {
			return err
		}
		if err := tx.Model(product).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepository) CreateVariant(variant *models.ProductVariant) error {
	var count int64
	err := r.db.Model(&models.Product{}).Where("id = ?", variant.ProductID).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrProductNotFound
	}
	return r.db.Create(variant).Error
}

func (r *productRepository) FindVariantByID(id string) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	err := r.db.Where("id = ?", id).First(&variant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVariantNotFound
		}
		return nil, err
	}
	return &variant, nil
}

func (r *productRepository) ListVariants(productID string) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := r.db.Where("product_id = ?", productID).Order("created_at ASC").Find(&variants).Error
	if err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *productRepository) UpdateVariant(variant *models.ProductVariant) error {
	return r.db.Save(variant).Error
}

func (r *productRepository) DeleteVariant(id string) (*models.ProductVariant, error) {
	variant, err := r.FindVariantByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.ProductVariant{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return variant, nil
}

func (r *productRepository) CreateReview(review *models.ProductReview) error {
	var count int64
	err := r.db.Model(&models.Product{}).Where("id = ?", review.ProductID).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrProductNotFound
	}
	return r.db.Create(review).Error
}

func (r *productRepository) ListReviews(productID string, approvedOnly bool) ([]models.ProductReview, error) {
	db := r.db.Where("product_id = ?", productID)
	if approvedOnly {
		db = db.Where("is_approved = ?", true)
	}

	var reviews []models.ProductReview
	if err := db.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *productRepository) UpdateReviewStatus(id string, approved bool) (*models.ProductReview, error) {
	var review models.ProductReview
	err := r.db.Where("id = ?", id).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if err := r.db.Model(&review).Update("is_approved", approved).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *productRepository) DeleteReview(id string) (*models.ProductReview, error) {
	var review models.ProductReview
	err := r.db.Where("id = ?", id).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if err := r.db.Delete(&models.ProductReview{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// Repository errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrVariantNotFound = errors.New("product variant not found")
	ErrReviewNotFound  = errors.New("review not found")
)
