package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/query"
	"github.com/thdihan/rangva-server/internal/database/repository"
)

// ProductFilterKeys are the query parameters the product list accepts
// besides pagination.
var ProductFilterKeys = []string{
	"searchTerm", "categoryId", "status",
	"isActive", "isFeatured", "isDigital",
	"priceMin", "priceMax", "tags",
}

// VariantInput is one variant row inside a product payload. A variant list
// on an update replaces the existing set wholesale.
type VariantInput struct {
	Name       string                 `json:"name" binding:"required"`
	SKU        *string                `json:"sku"`
	Price      *float64               `json:"price"`
	SalePrice  *float64               `json:"salePrice"`
	Stock      int                    `json:"stock"`
	Attributes map[string]interface{} `json:"attributes"`
	IsActive   *bool                  `json:"isActive"`
}

// CreateProductInput is the payload for creating a product.
type CreateProductInput struct {
	Name             string                 `json:"name" binding:"required"`
	Description      string                 `json:"description"`
	ShortDescription string                 `json:"shortDescription"`
	SKU              *string                `json:"sku"`
	Barcode          *string                `json:"barcode"`
	Price            float64                `json:"price" binding:"required"`
	SalePrice        *float64               `json:"salePrice"`
	CostPrice        *float64               `json:"costPrice"`
	Stock            int                    `json:"stock"`
	MinStock         int                    `json:"minStock"`
	MaxStock         *int                   `json:"maxStock"`
	TrackStock       *bool                  `json:"trackStock"`
	Status           *models.ProductStatus  `json:"status"`
	IsActive         *bool                  `json:"isActive"`
	IsFeatured       *bool                  `json:"isFeatured"`
	IsDigital        *bool                  `json:"isDigital"`
	Weight           *float64               `json:"weight"`
	Dimensions       *string                `json:"dimensions"`
	MetaTitle        *string                `json:"metaTitle"`
	MetaDescription  *string                `json:"metaDescription"`
	MetaKeywords     *string                `json:"metaKeywords"`
	Thumbnail        *string                `json:"thumbnail"`
	Images           []string               `json:"images"`
	Attributes       map[string]interface{} `json:"attributes"`
	Specifications   map[string]interface{} `json:"specifications"`
	CategoryID       string                 `json:"categoryId" binding:"required"`
	Tags             []string               `json:"tags"`
	Variants         []VariantInput         `json:"variants"`
}

// UpdateProductInput is the partial-update payload for a product. Nil fields
// are left untouched; a non-nil Tags or Variants slice replaces the set.
type UpdateProductInput struct {
	Name             *string                `json:"name"`
	Description      *string                `json:"description"`
	ShortDescription *string                `json:"shortDescription"`
	SKU              *string                `json:"sku"`
	Barcode          *string                `json:"barcode"`
	Price            *float64               `json:"price"`
	SalePrice        *float64               `json:"salePrice"`
	CostPrice        *float64               `json:"costPrice"`
	Stock            *int                   `json:"stock"`
	MinStock         *int                   `json:"minStock"`
	MaxStock         *int                   `json:"maxStock"`
	TrackStock       *bool                  `json:"trackStock"`
	Status           *models.ProductStatus  `json:"status"`
	IsActive         *bool                  `json:"isActive"`
	IsFeatured       *bool                  `json:"isFeatured"`
	IsDigital        *bool                  `json:"isDigital"`
	Weight           *float64               `json:"weight"`
	Dimensions       *string                `json:"dimensions"`
	MetaTitle        *string                `json:"metaTitle"`
	MetaDescription  *string                `json:"metaDescription"`
	MetaKeywords     *string                `json:"metaKeywords"`
	Thumbnail        *string                `json:"thumbnail"`
	Images           []string               `json:"images"`
	Attributes       map[string]interface{} `json:"attributes"`
	Specifications   map[string]interface{} `json:"specifications"`
	CategoryID       *string                `json:"categoryId"`
	Tags             []string               `json:"tags"`
	Variants         []VariantInput         `json:"variants"`
}

// UpdateVariantInput is the partial-update payload for a standalone variant.
type UpdateVariantInput struct {
	Name       *string                `json:"name"`
	SKU        *string                `json:"sku"`
	Price      *float64               `json:"price"`
	SalePrice  *float64               `json:"salePrice"`
	Stock      *int                   `json:"stock"`
	Attributes map[string]interface{} `json:"attributes"`
	IsActive   *bool                  `json:"isActive"`
}

// UpdateStockInput adjusts product inventory.
type UpdateStockInput struct {
	Quantity  int    `json:"quantity" binding:"required"`
	Operation string `json:"operation" binding:"required,oneof=set add subtract"`
}

// CreateTagInput is the payload for creating a tag.
type CreateTagInput struct {
	Name  string  `json:"name" binding:"required"`
	Color *string `json:"color"`
}

// UpdateTagInput renames a tag. A new name regenerates the slug, which must
// not collide with another tag.
type UpdateTagInput struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// UpdateReviewStatusInput toggles review moderation.
type UpdateReviewStatusInput struct {
	IsApproved *bool `json:"isApproved" binding:"required"`
}

// CreateReviewInput is the payload for submitting a product review.
type CreateReviewInput struct {
	Rating        int     `json:"rating" binding:"required,min=1,max=5"`
	Title         *string `json:"title"`
	Comment       string  `json:"comment" binding:"required"`
	ReviewerName  string  `json:"reviewerName" binding:"required"`
	ReviewerEmail string  `json:"reviewerEmail" binding:"required,email"`
}

// ProductService defines the interface for catalog business logic
type ProductService interface {
	Create(input CreateProductInput) (*models.Product, error)
	List(params map[string]string, opts query.Options) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	Update(id string, input UpdateProductInput) (*models.Product, error)
	UpdateStock(id string, input UpdateStockInput) (*models.Product, error)
	Related(id string, limit int) ([]models.Product, error)
	Delete(id string) (*models.Product, error)

	AddVariant(productID string, input VariantInput) (*models.ProductVariant, error)
	GetVariants(productID string) ([]models.ProductVariant, error)
	UpdateVariant(id string, input UpdateVariantInput) (*models.ProductVariant, error)
	DeleteVariant(id string) (*models.ProductVariant, error)

	CreateTag(input CreateTagInput) (*models.Tag, error)
	ListTags(params map[string]string, opts query.Options) ([]models.Tag, int64, error)
	UpdateTag(id string, input UpdateTagInput) (*models.Tag, error)
	DeleteTag(id string) (*models.Tag, error)

	CreateReview(productID string, input CreateReviewInput) (*models.ProductReview, error)
	GetReviews(productID string) ([]models.ProductReview, error)
	UpdateReviewStatus(id string, approved bool) (*models.ProductReview, error)
	DeleteReview(id string) (*models.ProductReview, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	tagRepo      repository.TagRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(
	productRepo repository.ProductRepository,
	tagRepo repository.TagRepository,
	categoryRepo repository.CategoryRepository,
	logger *slog.Logger,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		tagRepo:      tagRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *productService) Create(input CreateProductInput) (*models.Product, error) {
	s.logger.Info("📝 [ProductService] Creating product", "name", input.Name)

	if _, err := s.categoryRepo.FindByID(input.CategoryID); err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(input.Name)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.FindOrCreateByNames(input.Tags, GenerateSlug)
	if err != nil {
		s.logger.Error("❌ [ProductService] Failed to resolve tags", "error", err)
		return nil, err
	}

	product := &models.Product{
		Name:             input.Name,
		Slug:             slug,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		SKU:              input.SKU,
		Barcode:          input.Barcode,
		Price:            input.Price,
		SalePrice:        input.SalePrice,
		CostPrice:        input.CostPrice,
		Stock:            input.Stock,
		MinStock:         input.MinStock,
		MaxStock:         input.MaxStock,
		TrackStock:       boolOr(input.TrackStock, true),
		Status:           models.ProductDraft,
		IsActive:         boolOr(input.IsActive, true),
		IsFeatured:       boolOr(input.IsFeatured, false),
		IsDigital:        boolOr(input.IsDigital, false),
		Weight:           input.Weight,
		Dimensions:       input.Dimensions,
		MetaTitle:        input.MetaTitle,
		MetaDescription:  input.MetaDescription,
		MetaKeywords:     input.MetaKeywords,
		Thumbnail:        input.Thumbnail,
		Images:           datatypes.NewJSONSlice(input.Images),
		Attributes:       datatypes.JSONMap(input.Attributes),
		Specifications:   datatypes.JSONMap(input.Specifications),
		CategoryID:       input.CategoryID,
		Tags:             tags,
	}

	if input.Status != nil {
		product.Status = *input.Status
	}
	if product.Status == models.ProductPublished {
		now := time.Now()
		product.PublishedAt = &now
	}

	for _, v := range input.Variants {
		product.Variants = append(product.Variants, models.ProductVariant{
			Name:       v.Name,
			SKU:        v.SKU,
			Price:      v.Price,
			SalePrice:  v.SalePrice,
			Stock:      v.Stock,
			Attributes: datatypes.JSONMap(v.Attributes),
			IsActive:   boolOr(v.IsActive, true),
		})
	}

	if err := s.productRepo.Create(product); err != nil {
		s.logger.Error("❌ [ProductService] Failed to create product", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [ProductService] Product created successfully", "product_id", product.ID, "slug", product.Slug)
	return s.productRepo.FindByID(product.ID)
}

func (s *productService) List(params map[string]string, opts query.Options) ([]models.Product, int64, error) {
	filter := query.Filter{
		SearchTerm:   params["searchTerm"],
		SearchFields: []string{"name", "description", "shortDescription", "sku", "metaTitle", "metaKeywords"},
		Equals:       map[string]interface{}{},
	}

	if category, ok := params["categoryId"]; ok {
		filter.Equals["categoryId"] = category
	}
	if status, ok := params["status"]; ok {
		filter.Equals["status"] = status
	}
	for _, key := range []string{"isActive", "isFeatured", "isDigital"} {
		if raw, ok := params[key]; ok {
			if value, err := strconv.ParseBool(raw); err == nil {
				filter.Equals[key] = value
			}
		}
	}

	if raw, ok := params["priceMin"]; ok {
		if min, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.Scopes = append(filter.Scopes, func(db *gorm.DB) *gorm.DB {
				return db.Where("price >= ?", min)
			})
		}
	}
	if raw, ok := params["priceMax"]; ok {
		if max, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.Scopes = append(filter.Scopes, func(db *gorm.DB) *gorm.DB {
				return db.Where("price <= ?", max)
			})
		}
	}

	// tags is a comma-separated list of tag names; a product matches when it
	// carries any of them.
	if raw, ok := params["tags"]; ok && raw != "" {
		names := strings.Split(raw, ",")
		filter.Scopes = append(filter.Scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where(
				"id IN (SELECT product_id FROM product_tags JOIN tags ON tags.id = product_tags.tag_id WHERE tags.name IN ?)",
				names,
			)
		})
	}

	return s.productRepo.List(filter, opts)
}

func (s *productService) GetByID(id string) (*models.Product, error) {
	return s.productRepo.FindByID(id)
}

func (s *productService) GetBySlug(slug string) (*models.Product, error) {
	return s.productRepo.FindBySlug(slug)
}

func (s *productService) Update(id string, input UpdateProductInput) (*models.Product, error) {
	s.logger.Info("📝 [ProductService] Updating product", "product_id", id)

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*input.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *input.CategoryID
	}

	if input.Name != nil && *input.Name != product.Name {
		product.Name = *input.Name
		slug, err := s.uniqueSlug(*input.Name)
		if err != nil {
			return nil, err
		}
		product.Slug = slug
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&product.Description, input.Description)
	applyString(&product.ShortDescription, input.ShortDescription)

	if input.SKU != nil {
		product.SKU = input.SKU
	}
	if input.Barcode != nil {
		product.Barcode = input.Barcode
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.SalePrice != nil {
		product.SalePrice = input.SalePrice
	}
	if input.CostPrice != nil {
		product.CostPrice = input.CostPrice
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.MinStock != nil {
		product.MinStock = *input.MinStock
	}
	if input.MaxStock != nil {
		product.MaxStock = input.MaxStock
	}
	if input.TrackStock != nil {
		product.TrackStock = *input.TrackStock
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	if input.IsDigital != nil {
		product.IsDigital = *input.IsDigital
	}
	if input.Weight != nil {
		product.Weight = input.Weight
	}
	if input.Dimensions != nil {
		product.Dimensions = input.Dimensions
	}
	if input.MetaTitle != nil {
		product.MetaTitle = input.MetaTitle
	}
	if input.MetaDescription != nil {
		product.MetaDescription = input.MetaDescription
	}
	if input.MetaKeywords != nil {
		product.MetaKeywords = input.MetaKeywords
	}
	if input.Thumbnail != nil {
		product.Thumbnail = input.Thumbnail
	}
	if input.Images != nil {
		product.Images = datatypes.NewJSONSlice(input.Images)
	}
	if input.Attributes != nil {
		product.Attributes = datatypes.JSONMap(input.Attributes)
	}
	if input.Specifications != nil {
		product.Specifications = datatypes.JSONMap(input.Specifications)
	}

	if input.Status != nil {
		product.Status = *input.Status
		// PublishedAt records the first publish only.
		if product.Status == models.ProductPublished && product.PublishedAt == nil {
			now := time.Now()
			product.PublishedAt = &now
		}
	}

	if err := s.productRepo.Update(product); err != nil {
		s.logger.Error("❌ [ProductService] Failed to update product", "error", err)
		return nil, err
	}

	if input.Variants != nil {
		variants := make([]models.ProductVariant, 0, len(input.Variants))
		for _, v := range input.Variants {
			variants = append(variants, models.ProductVariant{
				Name:       v.Name,
				SKU:        v.SKU,
				Price:      v.Price,
				SalePrice:  v.SalePrice,
				Stock:      v.Stock,
				Attributes: datatypes.JSONMap(v.Attributes),
				IsActive:   boolOr(v.IsActive, true),
			})
		}
		if err := s.productRepo.ReplaceVariants(id, variants); err != nil {
			s.logger.Error("❌ [ProductService] Failed to replace variants", "error", err)
			return nil, err
		}
	}

	if input.Tags != nil {
		tags, err := s.tagRepo.FindOrCreateByNames(input.Tags, GenerateSlug)
		if err != nil {
			return nil, err
		}
		if err := s.productRepo.ReplaceTags(product, tags); err != nil {
			s.logger.Error("❌ [ProductService] Failed to replace tags", "error", err)
			return nil, err
		}
	}

	s.logger.Info("✅ [ProductService] Product updated successfully", "product_id", id)
	return s.productRepo.FindByID(id)
}

func (s *productService) UpdateStock(id string, input UpdateStockInput) (*models.Product, error) {
	s.logger.Info("📦 [ProductService] Updating stock", "product_id", id, "operation", input.Operation)

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	stock := product.Stock
	switch input.Operation {
	case "set":
		stock = input.Quantity
	case "add":
		stock += input.Quantity
	case "subtract":
		stock -= input.Quantity
	default:
		return nil, ErrInvalidStockOperation
	}

	if stock < 0 {
		return nil, ErrInsufficientStock
	}

	fields := map[string]interface{}{"stock": stock}
	if product.TrackStock && stock == 0 {
		fields["status"] = models.ProductOutOfStock
	}

	if err := s.productRepo.UpdateFields(id, fields); err != nil {
		s.logger.Error("❌ [ProductService] Failed to update stock", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [ProductService] Stock updated", "product_id", id, "stock", stock)
	return s.productRepo.FindByID(id)
}

func (s *productService) Related(id string, limit int) ([]models.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 4
	}
	return s.productRepo.Related(product.ID, product.CategoryID, limit)
}

func (s *productService) Delete(id string) (*models.Product, error) {
	s.logger.Info("🗑️ [ProductService] Deleting product", "product_id", id)

	product, err := s.productRepo.Delete(id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("✅ [ProductService] Product deleted successfully", "product_id", id)
	return product, nil
}

func (s *productService) AddVariant(productID string, input VariantInput) (*models.ProductVariant, error) {
	s.logger.Info("📝 [ProductService] Creating variant", "product_id", productID, "name", input.Name)

	variant := &models.ProductVariant{
		ProductID:  productID,
		Name:       input.Name,
		SKU:        input.SKU,
		Price:      input.Price,
		SalePrice:  input.SalePrice,
		Stock:      input.Stock,
		Attributes: datatypes.JSONMap(input.Attributes),
		IsActive:   boolOr(input.IsActive, true),
	}
	if err := s.productRepo.CreateVariant(variant); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, err
		}
		s.logger.Error("❌ [ProductService] Failed to create variant", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [ProductService] Variant created successfully", "variant_id", variant.ID)
	return variant, nil
}

func (s *productService) GetVariants(productID string) ([]models.ProductVariant, error) {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		return nil, err
	}
	return s.productRepo.ListVariants(productID)
}

func (s *productService) UpdateVariant(id string, input UpdateVariantInput) (*models.ProductVariant, error) {
	s.logger.Info("📝 [ProductService] Updating variant", "variant_id", id)

	variant, err := s.productRepo.FindVariantByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		variant.Name = *input.Name
	}
	if input.SKU != nil {
		variant.SKU = input.SKU
	}
	if input.Price != nil {
		variant.Price = input.Price
	}
	if input.SalePrice != nil {
		variant.SalePrice = input.SalePrice
	}
	if input.Stock != nil {
		variant.Stock = *input.Stock
	}
	if input.Attributes != nil {
		variant.Attributes = datatypes.JSONMap(input.Attributes)
	}
	if input.IsActive != nil {
		variant.IsActive = *input.IsActive
	}

	if err := s.productRepo.UpdateVariant(variant); err != nil {
		s.logger.Error("❌ [ProductService] Failed to update variant", "error", err)
		return nil, err
	}
	return variant, nil
}

func (s *productService) DeleteVariant(id string) (*models.ProductVariant, error) {
	s.logger.Info("🗑️ [ProductService] Deleting variant", "variant_id", id)
	return s.productRepo.DeleteVariant(id)
}

func (s *productService) CreateTag(input CreateTagInput) (*models.Tag, error) {
	s.logger.Info("📝 [ProductService] Creating tag", "name", input.Name)

	slug := GenerateSlug(input.Name)
	exists, err := s.tagRepo.SlugExists(slug)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Warn("⚠️ [ProductService] Tag slug already exists", "slug", slug)
		return nil, ErrTagAlreadyExists
	}

	tag := &models.Tag{Name: input.Name, Slug: slug, Color: input.Color}
	if err := s.tagRepo.Create(tag); err != nil {
		s.logger.Error("❌ [ProductService] Failed to create tag", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [ProductService] Tag created successfully", "tag_id", tag.ID)
	return tag, nil
}

func (s *productService) ListTags(params map[string]string, opts query.Options) ([]models.Tag, int64, error) {
	filter := query.Filter{
		SearchTerm:   params["searchTerm"],
		SearchFields: []string{"name"},
	}
	return s.tagRepo.List(filter, opts)
}

func (s *productService) UpdateTag(id string, input UpdateTagInput) (*models.Tag, error) {
	s.logger.Info("📝 [ProductService] Updating tag", "tag_id", id)

	tag, err := s.tagRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != tag.Name {
		slug := GenerateSlug(*input.Name)
		if slug != tag.Slug {
			exists, err := s.tagRepo.SlugExists(slug)
			if err != nil {
				return nil, err
			}
			if exists {
				s.logger.Warn("⚠️ [ProductService] Tag slug already exists", "slug", slug)
				return nil, ErrTagAlreadyExists
			}
		}
		tag.Name = *input.Name
		tag.Slug = slug
	}
	if input.Color != nil {
		tag.Color = input.Color
	}

	if err := s.tagRepo.Update(tag); err != nil {
		s.logger.Error("❌ [ProductService] Failed to update tag", "error", err)
		return nil, err
	}
	return tag, nil
}

func (s *productService) DeleteTag(id string) (*models.Tag, error) {
	s.logger.Info("🗑️ [ProductService] Deleting tag", "tag_id", id)
	return s.tagRepo.Delete(id)
}

func (s *productService) CreateReview(productID string, input CreateReviewInput) (*models.ProductReview, error) {
	s.logger.Info("📝 [ProductService] Creating review", "product_id", productID)

	review := &models.ProductReview{
		ProductID:     productID,
		Rating:        input.Rating,
		Title:         input.Title,
		Comment:       input.Comment,
		ReviewerName:  input.ReviewerName,
		ReviewerEmail: input.ReviewerEmail,
		IsApproved:    false,
	}
	if err := s.productRepo.CreateReview(review); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, err
		}
		s.logger.Error("❌ [ProductService] Failed to create review", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [ProductService] Review created successfully", "review_id", review.ID)
	return review, nil
}

func (s *productService) GetReviews(productID string) ([]models.ProductReview, error) {
	return s.productRepo.ListReviews(productID, true)
}

func (s *productService) UpdateReviewStatus(id string, approved bool) (*models.ProductReview, error) {
	s.logger.Info("✔️ [ProductService] Updating review status", "review_id", id, "approved", approved)
	return s.productRepo.UpdateReviewStatus(id, approved)
}

func (s *productService) DeleteReview(id string) (*models.ProductReview, error) {
	s.logger.Info("🗑️ [ProductService] Deleting review", "review_id", id)
	return s.productRepo.DeleteReview(id)
}

// uniqueSlug derives a slug from the name and, when taken, appends a
// millisecond timestamp instead of rejecting the create.
func (s *productService) uniqueSlug(name string) (string, error) {
	slug := GenerateSlug(name)
	exists, err := s.productRepo.SlugExists(slug)
	if err != nil {
		return "", err
	}
	if exists {
		slug = fmt.Sprintf("%s-%d", slug, time.Now().UnixMilli())
	}
	return slug, nil
}

func boolOr(value *bool, fallback bool) bool {
	if value != nil {
		return *value
	}
	return fallback
}

// Service errors
var (
	ErrTagAlreadyExists      = errors.New("tag with this name already exists")
	ErrInvalidStockOperation = errors.New("invalid stock operation")
	ErrInsufficientStock     = errors.New("insufficient stock")
)
