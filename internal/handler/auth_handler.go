package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/thdihan/rangva-server/internal/config"
	"github.com/thdihan/rangva-server/internal/database/service"
	"github.com/thdihan/rangva-server/internal/middleware"
	"github.com/thdihan/rangva-server/internal/response"
)

const refreshTokenCookie = "refreshToken"

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service service.AuthService
	cfg     *config.Config
	logger  *slog.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service service.AuthService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

// Request DTOs
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login issues an access token and sets the refresh token as an HTTP-only
// cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	c.SetCookie(refreshTokenCookie, result.RefreshToken,
		int(h.cfg.RefreshTokenExpiration), "/", "", h.cfg.AppEnv == "production", true)

	response.OK(c, "Logged in successfully", gin.H{
		"accessToken":        result.AccessToken,
		"needPasswordChange": result.NeedPasswordChange,
	})
}

// RefreshToken exchanges the refresh token cookie for a new access token.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshTokenCookie)
	if err != nil || refreshToken == "" {
		response.Error(c, h.logger, response.Unauthorized("refresh token missing"))
		return
	}

	result, err := h.service.RefreshToken(refreshToken)
	if err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Access token generated successfully", gin.H{
		"accessToken":        result.AccessToken,
		"needPasswordChange": result.NeedPasswordChange,
	})
}

// ChangePassword changes the password of the authenticated user.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	email := c.GetString(middleware.ContextUserEmail)
	if err := h.service.ChangePassword(email, req.OldPassword, req.NewPassword); err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Password changed successfully", nil)
}

// ForgotPassword emails a reset link to the given address.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	if err := h.service.ForgotPassword(req.Email); err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Check your email for the reset link", nil)
}

// ResetPassword sets a new password using the reset token from the
// Authorization header.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	token := c.GetHeader("Authorization")
	if token == "" {
		response.Error(c, h.logger, response.Unauthorized("reset token missing"))
		return
	}

	if err := h.service.ResetPassword(token, req.ID, req.Password); err != nil {
		response.Error(c, h.logger, mapServiceError(err))
		return
	}

	response.OK(c, "Password reset successfully", nil)
}
