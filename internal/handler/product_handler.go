package handler

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thdihan/rangva-server/internal/database/query"
	"github.com/thdihan/rangva-server/internal/database/service"
	"github.com/thdihan/rangva-server/internal/response"
)

// ProductHandler handles HTTP requests for the catalog
type ProductHandler struct {
	service service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// Create adds a new product with optional variants and tags.
func (h *ProductHandler) Create(c *gin.Context) {
	var req service.CreateProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	product, err := h.service.Create(req)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.Created(c, "Product created successfully", product)
}

// List returns products with filtering and pagination.
func (h *ProductHandler) List(c *gin.Context) {
	values := c.Request.URL.Query()
	params := query.Pick(values, service.ProductFilterKeys)
	opts := query.FormatOptions(query.OptionsFromQuery(values))

	products, total, err := h.service.List(params, opts)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.List(c, "Products retrieved successfully", response.Meta{
		Page:  opts.Page,
		Limit: opts.Limit,
		Total: total,
	}, products)
}

// Get returns a single product by id.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// GetBySlug returns a single product by slug.
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	product, err := h.service.GetBySlug(c.Param("slug"))
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update applies a partial update to a product.
func (h *ProductHandler) Update(c *gin.Context) {
	var req service.UpdateProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	product, err := h.service.Update(c.Param("id"), req)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// UpdateStock adjusts a product's inventory.
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	var req service.UpdateStockInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	product, err := h.service.UpdateStock(c.Param("id"), req)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Stock updated successfully", product)
}

// Related returns published products from the same category.
func (h *ProductHandler) Related(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	products, err := h.service.Related(c.Param("id"), limit)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Related products retrieved successfully", products)
}

// Delete removes a product with its variants, reviews and tag links.
func (h *ProductHandler) Delete(c *gin.Context) {
	product, err := h.service.Delete(c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Product deleted successfully", product)
}

// CreateVariant adds a variant to an existing product.
func (h *ProductHandler) CreateVariant(c *gin.Context) {
	var req service.VariantInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	variant, err := h.service.AddVariant(c.Param("id"), req)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.Created(c, "Product variant created successfully", variant)
}

// GetVariants returns all variants of a product.
func (h *ProductHandler) GetVariants(c *gin.Context) {
	variants, err := h.service.GetVariants(c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Product variants retrieved successfully", variants)
}

// UpdateVariant applies a partial update to a variant.
func (h *ProductHandler) UpdateVariant(c *gin.Context) {
	var req service.UpdateVariantInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	variant, err := h.service.UpdateVariant(c.Param("id"), req)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Product variant updated successfully", variant)
}

// DeleteVariant removes a variant.
func (h *ProductHandler) DeleteVariant(c *gin.Context) {
	variant, err := h.service.DeleteVariant(c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Product variant deleted successfully", variant)
}

// CreateTag adds a new tag.
func (h *ProductHandler) CreateTag(c *gin.Context) {
	var req service.CreateTagInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	tag, err := h.service.CreateTag(req)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.Created(c, "Tag created successfully", tag)
}

// ListTags returns tags with filtering and pagination.
func (h *ProductHandler) ListTags(c *gin.Context) {
	values := c.Request.URL.Query()
	params := query.Pick(values, []string{"searchTerm"})
	opts := query.FormatOptions(query.OptionsFromQuery(values))

	tags, total, err := h.service.ListTags(params, opts)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.List(c, "Tags retrieved successfully", response.Meta{
		Page:  opts.Page,
		Limit: opts.Limit,
		Total: total,
	}, tags)
}

// UpdateTag renames a tag, regenerating its slug.
func (h *ProductHandler) UpdateTag(c *gin.Context) {
	var req service.UpdateTagInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	tag, err := h.service.UpdateTag(c.Param("id"), req)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Tag updated successfully", tag)
}

// DeleteTag removes a tag and its product links.
func (h *ProductHandler) DeleteTag(c *gin.Context) {
	tag, err := h.service.DeleteTag(c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Tag deleted successfully", tag)
}

// CreateReview submits a review for a product. Reviews start unapproved.
func (h *ProductHandler) CreateReview(c *gin.Context) {
	var req service.CreateReviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	review, err := h.service.CreateReview(c.Param("id"), req)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.Created(c, "Review submitted successfully", review)
}

// GetReviews returns the approved reviews of a product.
func (h *ProductHandler) GetReviews(c *gin.Context) {
	reviews, err := h.service.GetReviews(c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Reviews retrieved successfully", reviews)
}

// UpdateReviewStatus flips a review's moderation flag. Only approved reviews
// appear on read paths.
func (h *ProductHandler) UpdateReviewStatus(c *gin.Context) {
	var req service.UpdateReviewStatusInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	review, err := h.service.UpdateReviewStatus(c.Param("id"), *req.IsApproved)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Review status updated successfully", review)
}

// DeleteReview removes a review.
func (h *ProductHandler) DeleteReview(c *gin.Context) {
	review, err := h.service.DeleteReview(c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Review deleted successfully", review)
}
