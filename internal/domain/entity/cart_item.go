package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one product entry in a user's shopping cart. A user holds at
// most one entry per product; adding the same product again increments the
// quantity instead of inserting a duplicate row.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
