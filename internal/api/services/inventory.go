package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"stockroom/internal/domain"
	"stockroom/internal/repository"
	"stockroom/internal/storage"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrInvalidInput = errors.New("invalid input")
)

// InventoryService implements the domain operations over the JSON-backed
// collection. Every operation is one whole-document cycle: load the full
// collection, work on the in-memory copy, persist the full collection. The
// mutex serializes those cycles so concurrent requests cannot lose writes.
type InventoryService struct {
	repo   *repository.InventoryRepository
	photos *storage.PhotoStore
	mu     sync.Mutex
}

func NewInventoryService(repo *repository.InventoryRepository, photos *storage.PhotoStore) *InventoryService {
	return &InventoryService{
		repo:   repo,
		photos: photos,
	}
}

// PhotoURL derives the canonical retrieval link for an item's photo from the
// inbound request origin. Never stored; always rebuilt per request.
func PhotoURL(baseURL, itemID string) string {
	return fmt.Sprintf("%s/inventory/%s/photo", strings.TrimSuffix(baseURL, "/"), itemID)
}

func (s *InventoryService) Register(ctx context.Context, name, description string, photo []byte) (*domain.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.repo.LoadAll()

	item := domain.Item{
		ID:          nextID(items),
		Name:        name,
		Description: description,
	}
	if len(photo) > 0 {
		path, err := s.photos.Store(photo)
		if err != nil {
			return nil, fmt.Errorf("store photo: %w", err)
		}
		item.PhotoPath = path
	}

	items = append(items, item)
	if err := s.repo.SaveAll(items); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *InventoryService) List(ctx context.Context) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.LoadAll(), nil
}

func (s *InventoryService) Get(ctx context.Context, id string) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.repo.LoadAll()
	idx := indexOf(items, id)
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	item := items[idx]
	return &item, nil
}

// Update replaces only the provided fields; a nil field keeps the current
// value. A provided name must remain non-empty after trimming.
func (s *InventoryService) Update(ctx context.Context, id string, name, description *string) (*domain.Item, error) {
	if name != nil && strings.TrimSpace(*name) == "" {
		return nil, fmt.Errorf("%w: name cannot be blank", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.repo.LoadAll()
	idx := indexOf(items, id)
	if idx < 0 {
		return nil, ErrItemNotFound
	}

	if name != nil {
		items[idx].Name = strings.TrimSpace(*name)
	}
	if description != nil {
		items[idx].Description = *description
	}

	if err := s.repo.SaveAll(items); err != nil {
		return nil, err
	}
	item := items[idx]
	return &item, nil
}

func (s *InventoryService) GetPhoto(ctx context.Context, id string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.repo.LoadAll()
	idx := indexOf(items, id)
	if idx < 0 || !items[idx].HasPhoto() {
		return nil, ErrItemNotFound
	}
	return s.photos.Retrieve(items[idx].PhotoPath)
}

// ReplacePhoto stores the new upload and repoints the item at it. The
// previous photo file is left in place.
func (s *InventoryService) ReplacePhoto(ctx context.Context, id string, photo []byte) (*domain.Item, error) {
	if len(photo) == 0 {
		return nil, fmt.Errorf("%w: photo is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.repo.LoadAll()
	idx := indexOf(items, id)
	if idx < 0 {
		return nil, ErrItemNotFound
	}

	path, err := s.photos.Store(photo)
	if err != nil {
		return nil, fmt.Errorf("store photo: %w", err)
	}
	items[idx].PhotoPath = path

	if err := s.repo.SaveAll(items); err != nil {
		return nil, err
	}
	item := items[idx]
	return &item, nil
}

func (s *InventoryService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.repo.LoadAll()
	idx := indexOf(items, id)
	if idx < 0 {
		return ErrItemNotFound
	}

	items = append(items[:idx], items[idx+1:]...)
	return s.repo.SaveAll(items)
}

// Search looks an item up by id. With includePhotoNote set and a photo
// present, the returned copy carries a photo link appended to its
// description; the stored record is untouched.
func (s *InventoryService) Search(ctx context.Context, id string, includePhotoNote bool, baseURL string) (*domain.Item, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if includePhotoNote && item.HasPhoto() {
		item.Description = strings.TrimSpace(item.Description + " Photo: " + PhotoURL(baseURL, item.ID))
	}
	return item, nil
}

// nextID renders the current millisecond timestamp and bumps it past any id
// already taken, so two registrations in the same millisecond stay unique.
func nextID(items []domain.Item) string {
	candidate := time.Now().UnixMilli()
	for {
		id := strconv.FormatInt(candidate, 10)
		if indexOf(items, id) < 0 {
			return id
		}
		candidate++
	}
}

func indexOf(items []domain.Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
