package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorageService writes files under a directory on the serving host.
// Stored references resolve to "{baseURL}/storage/{ref}".
type LocalStorageService struct {
	root    string
	baseURL string
}

// NewLocalStorageService creates the storage root if needed.
func NewLocalStorageService(root, baseURL string) (*LocalStorageService, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &LocalStorageService{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes the content to a uniquely named file and returns its reference.
func (s *LocalStorageService) Save(ctx context.Context, content io.Reader, filename string) (string, error) {
	ref := uuid.New().String() + "_" + sanitizeFilename(filename)
	dest, err := os.Create(filepath.Join(s.root, ref))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, content); err != nil {
		os.Remove(dest.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return ref, nil
}

// Delete removes the stored file. A missing file is ignored.
func (s *LocalStorageService) Delete(ctx context.Context, fileRef string) error {
	err := os.Remove(filepath.Join(s.root, filepath.Base(fileRef)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// URL joins the public base URL with the storage path convention.
func (s *LocalStorageService) URL(fileRef string) string {
	return s.baseURL + "/storage/" + fileRef
}

// Root returns the directory files are stored under.
func (s *LocalStorageService) Root() string {
	return s.root
}

// sanitizeFilename keeps the original name readable while stripping path
// separators and other hostile characters.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
