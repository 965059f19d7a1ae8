package storage

import (
	"context"
	"io"
)

// ResourceType classifies an uploaded object for the blob store.
type ResourceType string

const (
	ResourceImage ResourceType = "image"
	ResourceVideo ResourceType = "video"
)

// UploadResult contains the stored reference handed back to clients and
// persisted on Product records.
type UploadResult struct {
	// FileName is the sanitized, collision-suffixed name the object was
	// stored under.
	FileName string
	// FilePath is the stable reference: an absolute URL for remote backends,
	// a path under the static-serving prefix for the local backend.
	FilePath string
	// PublicID identifies the object for deletion. Empty for the local
	// backend, which derives it from the path instead.
	PublicID string
	// Size is the number of bytes stored.
	Size int64
}

// Storage abstracts the blob store holding uploaded media. Implementations
// cover the local filesystem and remote providers; swap them at startup.
type Storage interface {
	// Upload streams the file to the store under a name derived from
	// fileName and returns the stored reference.
	Upload(ctx context.Context, fileName string, contentType string, size int64, r io.Reader) (*UploadResult, error)

	// Delete removes the object identified by publicID. Deleting an object
	// that no longer exists is not an error.
	Delete(ctx context.Context, publicID string, resourceType ResourceType) error
}

// ResourceTypeFor maps a declared content type to the blob store's resource
// class. The filename plays no part in this.
func ResourceTypeFor(contentType string) ResourceType {
	if len(contentType) >= 6 && contentType[:6] == "video/" {
		return ResourceVideo
	}
	return ResourceImage
}
