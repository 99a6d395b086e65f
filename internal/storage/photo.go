package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var ErrPhotoNotFound = errors.New("photo not found")

// PhotoStore persists uploaded photo bytes as individual files under the
// cache directory and hands back the file path as an opaque reference.
// Nothing ever deletes a stored photo; replaced uploads are retained.
type PhotoStore struct {
	cacheDir string
}

func NewPhotoStore(cacheDir string) *PhotoStore {
	return &PhotoStore{cacheDir: cacheDir}
}

// Store writes the payload under a store-assigned unique name and returns
// the resulting reference.
func (s *PhotoStore) Store(data []byte) (string, error) {
	if err := os.MkdirAll(s.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}
	path := filepath.Join(s.cacheDir, uuid.New().String()+".jpg")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}
	return path, nil
}

// Retrieve resolves a reference returned by Store back to bytes. A missing
// or unreadable file is reported as ErrPhotoNotFound.
func (s *PhotoStore) Retrieve(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrPhotoNotFound
	}
	return data, nil
}
