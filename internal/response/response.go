package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Meta carries pagination info for list endpoints.
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// Envelope is the uniform response body returned by every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Meta    *Meta       `json:"meta,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// ApiError is a domain error carrying the HTTP status it should surface as.
type ApiError struct {
	Status  int
	Message string
	Err     error
}

func (e *ApiError) Error() string {
	return e.Message
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

func NewApiError(status int, message string) *ApiError {
	return &ApiError{Status: status, Message: message}
}

func BadRequest(message string) *ApiError   { return NewApiError(http.StatusBadRequest, message) }
func Unauthorized(message string) *ApiError { return NewApiError(http.StatusUnauthorized, message) }
func Forbidden(message string) *ApiError    { return NewApiError(http.StatusForbidden, message) }
func NotFound(message string) *ApiError     { return NewApiError(http.StatusNotFound, message) }
func Conflict(message string) *ApiError     { return NewApiError(http.StatusConflict, message) }

// OK writes a success envelope.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created writes a success envelope with 201.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List writes a success envelope with pagination meta.
func List(c *gin.Context, message string, meta Meta, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Meta:    &meta,
		Data:    data,
	})
}

// Error writes a failure envelope. Errors that are (or wrap) an *ApiError
// keep their status and message; anything else becomes a generic 500.
func Error(c *gin.Context, logger *slog.Logger, err error) {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, Envelope{
			Success: false,
			Message: apiErr.Message,
			Error:   apiErr.Message,
		})
		return
	}

	logger.Error("❌ [Response] Unhandled error", "error", err)
	c.JSON(http.StatusInternalServerError, Envelope{
		Success: false,
		Message: "Something went wrong",
		Error:   err.Error(),
	})
}

// ValidationError writes a 400 envelope with the binding failure detail.
func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Message: "Validation failed",
		Error:   err.Error(),
	})
}
