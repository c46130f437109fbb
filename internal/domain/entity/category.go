package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products in the catalog, e.g. "Fresh Vegetables".
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
