package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/thdihan/rangva-server/internal/config"
)

type localStorage struct {
	uploadPath string
	baseURL    string
	logger     *slog.Logger
}

// NewLocalStorage creates a disk-backed storage rooted at the configured
// upload path. Files are served under /uploads by the HTTP layer.
func NewLocalStorage(cfg *config.Config, logger *slog.Logger) (Storage, error) {
	if err := os.MkdirAll(cfg.LocalUploadPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &localStorage{
		uploadPath: cfg.LocalUploadPath,
		baseURL:    cfg.BaseURL,
		logger:     logger,
	}, nil
}

func (s *localStorage) Upload(ctx context.Context, file *multipart.FileHeader, name string) (*UploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// The stored name is generated by the caller; reject anything that
	// would escape the upload directory.
	if name != filepath.Base(name) {
		return nil, fmt.Errorf("invalid file name: %s", name)
	}

	destPath := filepath.Join(s.uploadPath, name)
	dest, err := os.Create(destPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		os.Remove(destPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	s.logger.Info("💾 [LocalStorage] File stored", "name", name, "size", file.Size)

	return &UploadResult{
		URL: strings.TrimSuffix(s.baseURL, "/") + "/uploads/" + name,
		Key: name,
	}, nil
}

func (s *localStorage) Delete(ctx context.Context, key string) error {
	if key != filepath.Base(key) {
		return fmt.Errorf("invalid file key: %s", key)
	}
	if err := os.Remove(filepath.Join(s.uploadPath, key)); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

func (s *localStorage) Type() string {
	return config.StorageLocal
}
