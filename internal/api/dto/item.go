package dto

import (
	"stockroom/internal/api/services"
	"stockroom/internal/domain"
)

// Item is the wire representation of an inventory record. PhotoURL is
// derived from the current request origin and is null until a photo exists.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PhotoURL    *string `json:"photoUrl"`
}

type RegisterRequest struct {
	Name        string `form:"inventory_name" validate:"required"`
	Description string `form:"description"`
}

type RegisterResponse struct {
	Message     string  `json:"message"`
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PhotoURL    *string `json:"photoUrl"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type UpdateItemResponse struct {
	Message     string `json:"message"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ReplacePhotoResponse struct {
	Message  string `json:"message"`
	PhotoURL string `json:"photoUrl"`
}

type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type SearchRequest struct {
	ID       string `form:"id" validate:"required"`
	HasPhoto string `form:"has_photo"`
}

type SearchResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	HasPhoto    bool   `json:"hasPhoto"`
}

func ItemFromDomain(item *domain.Item, baseURL string) *Item {
	if item == nil {
		return nil
	}
	return &Item{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		PhotoURL:    photoURL(item, baseURL),
	}
}

func ItemsFromDomain(items []domain.Item, baseURL string) []*Item {
	result := make([]*Item, len(items))
	for i := range items {
		result[i] = ItemFromDomain(&items[i], baseURL)
	}
	return result
}

func SearchResponseFromDomain(item *domain.Item) *SearchResponse {
	return &SearchResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		HasPhoto:    item.HasPhoto(),
	}
}

func photoURL(item *domain.Item, baseURL string) *string {
	if !item.HasPhoto() {
		return nil
	}
	url := services.PhotoURL(baseURL, item.ID)
	return &url
}
