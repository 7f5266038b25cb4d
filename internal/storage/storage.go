// Package storage abstracts where uploaded media bytes live. The gallery
// records which backend stored each file, so deletes can be dispatched to
// the right backend even after the configured default changes.
package storage

import (
	"context"
	"mime/multipart"
)

// UploadResult is what a backend reports after storing a file.
type UploadResult struct {
	// URL is the public address the file is served from.
	URL string
	// Key is the backend-specific locator needed to delete the file later.
	Key string
}

// Storage defines the interface for a media storage backend
type Storage interface {
	Upload(ctx context.Context, file *multipart.FileHeader, name string) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
	Type() string
}
