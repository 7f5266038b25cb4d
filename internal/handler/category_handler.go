package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/thdihan/rangva-server/internal/database/query"
	"github.com/thdihan/rangva-server/internal/database/service"
	"github.com/thdihan/rangva-server/internal/response"
)

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	service service.CategoryService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service service.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger,
	}
}

// Create adds a new category.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req service.CreateCategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	category, err := h.service.Create(req)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.Created(c, "Category created successfully", category)
}

// List returns categories with filtering and pagination.
func (h *CategoryHandler) List(c *gin.Context) {
	values := c.Request.URL.Query()
	params := query.Pick(values, service.CategoryFilterKeys)
	opts := query.FormatOptions(query.OptionsFromQuery(values))

	categories, total, err := h.service.List(params, opts)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.List(c, "Categories retrieved successfully", response.Meta{
		Page:  opts.Page,
		Limit: opts.Limit,
		Total: total,
	}, categories)
}

// Get returns a single category by id.
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.service.Get(c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Category retrieved successfully", category)
}

// Update applies a partial update to a category.
func (h *CategoryHandler) Update(c *gin.Context) {
	var req service.UpdateCategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	category, err := h.service.Update(c.Param("id"), req)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Category updated successfully", category)
}

// Delete removes a category.
func (h *CategoryHandler) Delete(c *gin.Context) {
	category, err := h.service.Delete(c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Category deleted successfully", category)
}
