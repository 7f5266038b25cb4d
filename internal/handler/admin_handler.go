package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/thdihan/rangva-server/internal/database/query"
	"github.com/thdihan/rangva-server/internal/database/service"
	"github.com/thdihan/rangva-server/internal/response"
)

// AdminHandler handles HTTP requests for admin profiles
type AdminHandler struct {
	service service.AdminService
	logger  *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service service.AdminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger,
	}
}

// List returns admins with filtering and pagination.
func (h *AdminHandler) List(c *gin.Context) {
	values := c.Request.URL.Query()
	params := query.Pick(values, service.AdminFilterKeys)
	opts := query.FormatOptions(query.OptionsFromQuery(values))

	admins, total, err := h.service.List(params, opts)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.List(c, "Admins retrieved successfully", response.Meta{
		Page:  opts.Page,
		Limit: opts.Limit,
		Total: total,
	}, admins)
}

// Get returns a single admin by id.
func (h *AdminHandler) Get(c *gin.Context) {
	admin, err := h.service.Get(c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Admin retrieved successfully", admin)
}

// Update applies a partial update to an admin profile.
func (h *AdminHandler) Update(c *gin.Context) {
	var req service.UpdateAdminInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	admin, err := h.service.Update(c.Param("id"), req)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Admin updated successfully", admin)
}

// Delete removes an admin and its identity row permanently.
func (h *AdminHandler) Delete(c *gin.Context) {
	admin, err := h.service.Delete(c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Admin deleted successfully", admin)
}

// SoftDelete marks an admin deleted without removing rows.
func (h *AdminHandler) SoftDelete(c *gin.Context) {
	admin, err := h.service.SoftDelete(c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Admin deleted successfully", admin)
}
