package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"aurora/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryStorageService stores consent documents in Cloudinary. Stored
// references are full delivery URLs, returned unchanged by URL.
type CloudinaryStorageService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStorageService initializes the Cloudinary client from config.
func NewCloudinaryStorageService() (*CloudinaryStorageService, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorageService{cld: cld, folder: "consents"}, nil
}

// Save uploads the content and returns its secure delivery URL.
func (s *CloudinaryStorageService) Save(ctx context.Context, content io.Reader, filename string) (string, error) {
	publicID := s.folder + "/" + uuid.New().String() + "_" + sanitizeFilename(filename)
	resp, err := s.cld.Upload.Upload(ctx, content, uploader.UploadParams{
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return resp.SecureURL, nil
}

// Delete removes the uploaded asset behind the delivery URL.
func (s *CloudinaryStorageService) Delete(ctx context.Context, fileRef string) error {
	publicID := publicIDFromURL(fileRef)
	if publicID == "" {
		return nil
	}
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// URL returns the stored delivery URL unchanged.
func (s *CloudinaryStorageService) URL(fileRef string) string {
	return fileRef
}

// publicIDFromURL recovers the public id from a Cloudinary delivery URL.
func publicIDFromURL(url string) string {
	idx := strings.Index(url, "/consents/")
	if idx < 0 {
		return ""
	}
	id := url[idx+1:]
	if dot := strings.LastIndex(id, "."); dot > 0 {
		id = id[:dot]
	}
	return id
}
