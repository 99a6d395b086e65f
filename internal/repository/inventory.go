package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"stockroom/internal/domain"
)

var ErrStorageUnavailable = errors.New("inventory storage unavailable")

const documentName = "inventory.json"

// InventoryRepository owns the single JSON document holding the whole
// collection. Access is whole-document only: LoadAll, mutate in memory,
// SaveAll. There is no partial or indexed access.
type InventoryRepository struct {
	cacheDir string
}

func NewInventoryRepository(cacheDir string) *InventoryRepository {
	return &InventoryRepository{cacheDir: cacheDir}
}

// EnsureInitialized creates the cache directory and writes an empty
// collection document if none exists yet. Safe to call repeatedly.
func (r *InventoryRepository) EnsureInitialized() error {
	if err := os.MkdirAll(r.cacheDir, 0o755); err != nil {
		return fmt.Errorf("%w: create cache dir: %v", ErrStorageUnavailable, err)
	}
	path := r.documentPath()
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: stat document: %v", ErrStorageUnavailable, err)
	}
	return r.SaveAll([]domain.Item{})
}

// LoadAll reads the backing document. A missing, unreadable or corrupt
// document yields an empty collection rather than an error; the condition is
// logged so the fallback stays visible.
func (r *InventoryRepository) LoadAll() []domain.Item {
	data, err := os.ReadFile(r.documentPath())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("inventory document unreadable, treating as empty: %v", err)
		}
		return []domain.Item{}
	}

	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("inventory document corrupt, treating as empty: %v", err)
		return []domain.Item{}
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items
}

// SaveAll replaces the backing document with the given collection. The write
// goes to a temp file in the same directory and is renamed into place, so a
// concurrent LoadAll never observes a partial document.
func (r *InventoryRepository) SaveAll(items []domain.Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode collection: %v", ErrStorageUnavailable, err)
	}

	tmp, err := os.CreateTemp(r.cacheDir, documentName+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp document: %v", ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()

	// CreateTemp uses 0600; match the mode of the rest of the cache dir.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: chmod document: %v", ErrStorageUnavailable, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write document: %v", ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close document: %v", ErrStorageUnavailable, err)
	}
	if err := os.Rename(tmpName, r.documentPath()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace document: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (r *InventoryRepository) documentPath() string {
	return filepath.Join(r.cacheDir, documentName)
}
