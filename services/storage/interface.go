package storage

import (
	"context"
	"fmt"
	"io"

	"aurora/config"
)

// StorageService stores uploaded consent documents.
type StorageService interface {
	// Save persists the file content and returns the stored file reference.
	Save(ctx context.Context, content io.Reader, filename string) (string, error)
	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, fileRef string) error
	// URL resolves a stored file reference to a fetchable URL.
	URL(fileRef string) string
}

// New selects a storage backend from configuration.
func New() (StorageService, error) {
	switch config.AppConfig.StorageBackend {
	case "", "local":
		return NewLocalStorageService(config.AppConfig.StorageRoot, config.AppConfig.PublicBaseURL)
	case "cloudinary":
		return NewCloudinaryStorageService()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.AppConfig.StorageBackend)
	}
}
