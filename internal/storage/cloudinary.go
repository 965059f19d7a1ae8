package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage stores media on Cloudinary. Objects live under a folder
// per resource type and are addressed by their public id.
type CloudinaryStorage struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStorage builds a Cloudinary-backed Storage from a
// cloudinary:// credentials URL.
func NewCloudinaryStorage(cloudinaryURL, folder string) (*CloudinaryStorage, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}
	return &CloudinaryStorage{client: client, folder: folder}, nil
}

// Upload sends the file to Cloudinary and returns its secure delivery URL.
func (s *CloudinaryStorage) Upload(ctx context.Context, fileName string, contentType string, size int64, r io.Reader) (*UploadResult, error) {
	name := SanitizeFileName(fileName)
	// Cloudinary appends the format itself; the public id must not carry it.
	publicID := strings.TrimSuffix(name, extOf(name))

	resp, err := s.client.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       s.folder,
		ResourceType: string(ResourceTypeFor(contentType)),
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload failed: %w", err)
	}

	return &UploadResult{
		FileName: name,
		FilePath: resp.SecureURL,
		PublicID: resp.PublicID,
		Size:     int64(resp.Bytes),
	}, nil
}

// Delete destroys the object. A "not found" result is success: the object is
// gone either way.
func (s *CloudinaryStorage) Delete(ctx context.Context, publicID string, resourceType ResourceType) error {
	resp, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: string(resourceType),
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("cloudinary destroy returned %q for %s", resp.Result, publicID)
	}
	return nil
}

func extOf(name string) string {
	if dot := strings.LastIndex(name, "."); dot >= 0 {
		return name[dot:]
	}
	return ""
}
