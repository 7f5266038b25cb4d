package handler

import (
	"log/slog"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/thdihan/rangva-server/internal/database/query"
	"github.com/thdihan/rangva-server/internal/database/service"
	"github.com/thdihan/rangva-server/internal/response"
)

// GalleryHandler handles HTTP requests for the media gallery
type GalleryHandler struct {
	service service.GalleryService
	logger  *slog.Logger
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(service service.GalleryService, logger *slog.Logger) *GalleryHandler {
	return &GalleryHandler{
		service: service,
		logger:  logger,
	}
}

// Upload stores up to 10 images. Files arrive under the "images" form field,
// or "image" for single uploads; both are accepted together.
func (h *GalleryHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, h.logger, response.BadRequest("invalid multipart form"))
		return
	}

	var files []*multipart.FileHeader
	files = append(files, form.File["images"]...)
	files = append(files, form.File["image"]...)

	var description *string
	if value := c.PostForm("description"); value != "" {
		description = &value
	}

	uploaded, err := h.service.Upload(c.Request.Context(), files, description)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.Created(c, "Images uploaded successfully", uploaded)
}

// List returns gallery images with filtering and pagination.
func (h *GalleryHandler) List(c *gin.Context) {
	values := c.Request.URL.Query()
	params := query.Pick(values, service.GalleryFilterKeys)
	opts := query.FormatOptions(query.OptionsFromQuery(values))

	images, total, err := h.service.List(params, opts)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.List(c, "Images retrieved successfully", response.Meta{
		Page:  opts.Page,
		Limit: opts.Limit,
		Total: total,
	}, images)
}

// Get returns a single gallery image by id.
func (h *GalleryHandler) Get(c *gin.Context) {
	image, err := h.service.Get(c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Image retrieved successfully", image)
}

// Update applies a partial update to an image record.
func (h *GalleryHandler) Update(c *gin.Context) {
	var req service.UpdateImageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	image, err := h.service.Update(c.Param("id"), req)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Image updated successfully", image)
}

// Delete removes the record and best-effort deletes the stored file.
func (h *GalleryHandler) Delete(c *gin.Context) {
	image, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Image deleted successfully", image)
}

// BulkDelete removes several images in one call.
func (h *GalleryHandler) BulkDelete(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	deleted, err := h.service.DeleteMany(c.Request.Context(), req.IDs)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Images deleted successfully", gin.H{"deletedCount": deleted})
}
