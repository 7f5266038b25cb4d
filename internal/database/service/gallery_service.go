package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/query"
	"github.com/thdihan/rangva-server/internal/database/repository"
	"github.com/thdihan/rangva-server/internal/storage"
)

// GalleryFilterKeys are the query parameters the gallery list accepts
// besides pagination.
var GalleryFilterKeys = []string{"searchTerm", "isActive", "storageType", "mimeType"}

const (
	maxUploadFiles    = 10
	maxUploadFileSize = 5 << 20 // 5 MB
)

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UpdateImageInput is the partial-update payload for a gallery image.
type UpdateImageInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// GalleryService defines the interface for media gallery business logic
type GalleryService interface {
	Upload(ctx context.Context, files []*multipart.FileHeader, description *string) ([]models.GalleryImage, error)
	List(params map[string]string, opts query.Options) ([]models.GalleryImage, int64, error)
	Get(id string) (*models.GalleryImage, error)
	Update(id string, input UpdateImageInput) (*models.GalleryImage, error)
	Delete(ctx context.Context, id string) (*models.GalleryImage, error)
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}

type galleryService struct {
	galleryRepo repository.GalleryRepository
	backends    map[string]storage.Storage
	defaultType string
	logger      *slog.Logger
}

// NewGalleryService creates a new gallery service instance. Uploads go to
// the backend matching defaultType; deletes are dispatched to whichever
// backend each record says holds its bytes.
func NewGalleryService(
	galleryRepo repository.GalleryRepository,
	backends map[string]storage.Storage,
	defaultType string,
	logger *slog.Logger,
) GalleryService {
	return &galleryService{
		galleryRepo: galleryRepo,
		backends:    backends,
		defaultType: defaultType,
		logger:      logger,
	}
}

// Upload stores files one at a time. On the first failure it stops and
// returns the records committed so far along with the error; earlier files
// stay stored.
func (s *galleryService) Upload(ctx context.Context, files []*multipart.FileHeader, description *string) ([]models.GalleryImage, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if len(files) > maxUploadFiles {
		return nil, ErrTooManyFiles
	}

	store, ok := s.backends[s.defaultType]
	if !ok {
		return nil, ErrStorageUnavailable
	}

	s.logger.Info("📤 [GalleryService] Uploading files", "count", len(files), "storage", s.defaultType)

	uploaded := make([]models.GalleryImage, 0, len(files))
	for _, file := range files {
		if err := validateUpload(file); err != nil {
			s.logger.Warn("⚠️ [GalleryService] Rejected file", "name", file.Filename, "error", err)
			return uploaded, err
		}

		name := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename))
		result, err := store.Upload(ctx, file, name)
		if err != nil {
			s.logger.Error("❌ [GalleryService] Upload failed", "name", file.Filename, "error", err)
			return uploaded, err
		}

		image := models.GalleryImage{
			Name:         name,
			OriginalName: file.Filename,
			URL:          result.URL,
			StorageType:  store.Type(),
			Size:         file.Size,
			MimeType:     file.Header.Get("Content-Type"),
			Description:  description,
			IsActive:     true,
		}
		switch store.Type() {
		case "cloud":
			image.CloudKey = &result.Key
		default:
			image.LocalPath = &result.Key
		}

		if err := s.galleryRepo.Create(&image); err != nil {
			s.logger.Error("❌ [GalleryService] Failed to save image record", "error", err)
			return uploaded, err
		}
		uploaded = append(uploaded, image)
	}

	s.logger.Info("✅ [GalleryService] Files uploaded successfully", "count", len(uploaded))
	return uploaded, nil
}

func (s *galleryService) List(params map[string]string, opts query.Options) ([]models.GalleryImage, int64, error) {
	filter := query.Filter{
		SearchTerm:   params["searchTerm"],
		SearchFields: []string{"name", "originalName", "description"},
		Equals:       map[string]interface{}{},
	}
	if raw, ok := params["isActive"]; ok {
		if value, err := strconv.ParseBool(raw); err == nil {
			filter.Equals["isActive"] = value
		}
	}
	for _, key := range []string{"storageType", "mimeType"} {
		if value, ok := params[key]; ok {
			filter.Equals[key] = value
		}
	}

	return s.galleryRepo.List(filter, opts)
}

func (s *galleryService) Get(id string) (*models.GalleryImage, error) {
	return s.galleryRepo.FindByID(id)
}

func (s *galleryService) Update(id string, input UpdateImageInput) (*models.GalleryImage, error) {
	s.logger.Info("📝 [GalleryService] Updating image", "image_id", id)

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}

	return s.galleryRepo.Update(id, fields)
}

// Delete removes the database record first, then tries to remove the stored
// bytes. A backend failure is logged but does not undo the delete.
func (s *galleryService) Delete(ctx context.Context, id string) (*models.GalleryImage, error) {
	s.logger.Info("🗑️ [GalleryService] Deleting image", "image_id", id)

	image, err := s.galleryRepo.Delete(id)
	if err != nil {
		return nil, err
	}

	store, ok := s.backends[image.StorageType]
	if !ok {
		s.logger.Warn("⚠️ [GalleryService] No backend for stored file", "storage_type", image.StorageType)
		return image, nil
	}

	key := ""
	switch {
	case image.CloudKey != nil:
		key = *image.CloudKey
	case image.LocalPath != nil:
		key = *image.LocalPath
	}
	if key == "" {
		return image, nil
	}

	if err := store.Delete(ctx, key); err != nil {
		s.logger.Warn("⚠️ [GalleryService] Failed to remove stored file", "key", key, "error", err)
	}

	s.logger.Info("✅ [GalleryService] Image deleted", "image_id", id)
	return image, nil
}

// DeleteMany removes every matching record in one statement, then tries to
// remove each stored artifact. Backend failures are logged and skipped.
func (s *galleryService) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	s.logger.Info("🗑️ [GalleryService] Deleting images", "count", len(ids))

	if len(ids) == 0 {
		return 0, ErrNoFiles
	}

	images, err := s.galleryRepo.FindByIDs(ids)
	if err != nil {
		return 0, err
	}

	deleted, err := s.galleryRepo.DeleteByIDs(ids)
	if err != nil {
		return 0, err
	}

	for _, image := range images {
		store, ok := s.backends[image.StorageType]
		if !ok {
			s.logger.Warn("⚠️ [GalleryService] No backend for stored file", "storage_type", image.StorageType)
			continue
		}

		key := ""
		switch {
		case image.CloudKey != nil:
			key = *image.CloudKey
		case image.LocalPath != nil:
			key = *image.LocalPath
		}
		if key == "" {
			continue
		}
		if err := store.Delete(ctx, key); err != nil {
			s.logger.Warn("⚠️ [GalleryService] Failed to remove stored file", "key", key, "error", err)
		}
	}

	s.logger.Info("✅ [GalleryService] Images deleted", "count", deleted)
	return deleted, nil
}

func validateUpload(file *multipart.FileHeader) error {
	if !allowedMimeTypes[file.Header.Get("Content-Type")] {
		return ErrUnsupportedFileType
	}
	if file.Size > maxUploadFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// Service errors
var (
	ErrNoFiles             = errors.New("no files provided")
	ErrTooManyFiles        = errors.New("maximum 10 files allowed per upload")
	ErrUnsupportedFileType = errors.New("only JPEG, PNG, GIF and WebP images are allowed")
	ErrFileTooLarge        = errors.New("file exceeds the 5MB size limit")
	ErrStorageUnavailable  = errors.New("storage backend not configured")
)
