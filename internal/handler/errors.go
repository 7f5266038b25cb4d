package handler

import (
	"errors"

	"github.com/thdihan/rangva-server/internal/database/repository"
	"github.com/thdihan/rangva-server/internal/database/service"
	"github.com/thdihan/rangva-server/internal/response"
)

// mapServiceError attaches an HTTP status to known service and repository
// errors. Unknown errors pass through and surface as 500.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrAdminNotFound),
		errors.Is(err, repository.ErrDoctorNotFound),
		errors.Is(err, repository.ErrCategoryNotFound),
		errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrVariantNotFound),
		errors.Is(err, repository.ErrReviewNotFound),
		errors.Is(err, repository.ErrTagNotFound),
		errors.Is(err, repository.ErrImageNotFound),
		errors.Is(err, service.ErrProfileNotFound):
		return response.NotFound(err.Error())

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrInvalidToken):
		return response.Unauthorized(err.Error())

	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrTagAlreadyExists):
		return response.Conflict(err.Error())

	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidStockOperation),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrNoFiles),
		errors.Is(err, service.ErrTooManyFiles),
		errors.Is(err, service.ErrUnsupportedFileType),
		errors.Is(err, service.ErrFileTooLarge):
		return response.BadRequest(err.Error())

	default:
		return err
	}
}
