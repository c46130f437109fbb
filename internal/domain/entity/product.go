package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a single catalog item. Price is the current list price; orders
// snapshot it at placement time and are unaffected by later changes.
type Product struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	Price                float64   `json:"price"`
	CategoryID           uuid.UUID `json:"category_id"`
	ImageURL             string    `json:"image_url"`
	StockQuantity        int       `json:"stock_quantity"`
	OrganicCertification bool      `json:"organic_certification"`
	FarmOrigin           string    `json:"farm_origin,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
