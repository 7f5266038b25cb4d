package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/query"
	"github.com/thdihan/rangva-server/internal/database/service"
	"github.com/thdihan/rangva-server/internal/middleware"
	"github.com/thdihan/rangva-server/internal/response"
)

// UserHandler handles HTTP requests for user accounts
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateAdmin creates an admin account with its identity row.
func (h *UserHandler) CreateAdmin(c *gin.Context) {
	var req service.CreateAdminInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	admin, err := h.service.CreateAdmin(req)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.Created(c, "Admin created successfully", admin)
}

// CreateDoctor creates a doctor account with its identity row.
func (h *UserHandler) CreateDoctor(c *gin.Context) {
	var req service.CreateDoctorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	doctor, err := h.service.CreateDoctor(req)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.Created(c, "Doctor created successfully", doctor)
}

// List returns users with filtering and pagination.
func (h *UserHandler) List(c *gin.Context) {
	values := c.Request.URL.Query()
	params := query.Pick(values, service.UserFilterKeys)
	opts := query.FormatOptions(query.OptionsFromQuery(values))

	users, total, err := h.service.List(params, opts)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.List(c, "Users retrieved successfully", response.Meta{
		Page:  opts.Page,
		Limit: opts.Limit,
		Total: total,
	}, users)
}

// UpdateStatus changes a user's account status.
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	user, err := h.service.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "User status updated successfully", user)
}

// GetMe returns the authenticated user's identity merged with their
// role-specific profile.
func (h *UserHandler) GetMe(c *gin.Context) {
	email := c.GetString(middleware.ContextUserEmail)
	role := models.UserRole(c.GetString(middleware.ContextUserRole))

	user, profile, err := h.service.GetMyProfile(email, role)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Profile retrieved successfully", mergeJSON(user, profile))
}

// UpdateMe updates the authenticated user's profile. The multipart form
// carries an optional "file" photo and a "data" field holding a JSON object
// of profile fields.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	email := c.GetString(middleware.ContextUserEmail)
	role := models.UserRole(c.GetString(middleware.ContextUserRole))

	fields := map[string]interface{}{}
	if data := c.PostForm("data"); data != "" {
		if err := json.Unmarshal([]byte(data), &fields); err != nil {
			response.Error(c, h.logger, response.BadRequest("invalid data payload"))
			return
		}
	}

	file, err := c.FormFile("file")
	if err != nil {
		file = nil
	}

	profile, err := h.service.UpdateMyProfile(c.Request.Context(), email, role, fields, file)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Profile updated successfully", profile)
}

// mergeJSON flattens two structs into a single object, with fields of the
// second overriding the first.
func mergeJSON(base interface{}, overlay interface{}) map[string]interface{} {
	merged := map[string]interface{}{}
	for _, value := range []interface{}{base, overlay} {
		if value == nil {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			continue
		}
		var fields map[string]interface{}
		if err := json.Unmarshal(raw, &fields); err != nil {
			continue
		}
		for k, v := range fields {
			merged[k] = v
		}
	}
	return merged
}
