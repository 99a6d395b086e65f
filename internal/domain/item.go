package domain

// Item is one inventory record. PhotoPath is empty until a photo has been
// uploaded; it always points at the most recently stored photo file.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PhotoPath   string `json:"photoPath,omitempty"`
}

func (i *Item) HasPhoto() bool {
	return i.PhotoPath != ""
}
