package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalURLPrefix is the well-known static-serving prefix local stored
// references live under.
const LocalURLPrefix = "/uploads"

// LocalStorage stores uploaded files on the local filesystem under a
// directory served statically, and returns paths under urlPrefix.
type LocalStorage struct {
	dir       string
	urlPrefix string
}

// NewLocalStorage creates the upload directory if needed and returns a
// filesystem-backed Storage.
func NewLocalStorage(dir, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalStorage{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

// Upload writes the file under a sanitized unique name and returns its path
// under the static-serving prefix.
func (s *LocalStorage) Upload(ctx context.Context, fileName string, contentType string, size int64, r io.Reader) (*UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := SanitizeFileName(fileName)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", name, err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, r)
	if err != nil {
		os.Remove(dst.Name())
		return nil, fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return &UploadResult{
		FileName: name,
		FilePath: s.urlPrefix + "/" + name,
		Size:     written,
	}, nil
}

// Delete removes the named file. Missing files are treated as already
// deleted.
func (s *LocalStorage) Delete(ctx context.Context, publicID string, resourceType ResourceType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// The public id for a local object is its base name without extension;
	// match any extension so references extracted from URLs still resolve.
	matches, err := filepath.Glob(filepath.Join(s.dir, filepath.Base(publicID)+".*"))
	if err != nil {
		return fmt.Errorf("failed to match files for %s: %w", publicID, err)
	}
	if exact := filepath.Join(s.dir, filepath.Base(publicID)); fileExists(exact) {
		matches = append(matches, exact)
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", m, err)
		}
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
