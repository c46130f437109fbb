package repository

import (
	"context"
	"errors"

	"grocer/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a cart entry does not exist for the owner.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the operations for shopping cart persistence.
// All reads and deletes are scoped to the owning user.
type CartRepository interface {
	// ListByUserID returns up to limit cart entries owned by the user.
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.CartItem, error)

	// Upsert inserts the cart entry, or atomically increments the quantity of
	// the existing (user_id, product_id) entry. The item is updated in place
	// with the resulting row.
	Upsert(ctx context.Context, item *entity.CartItem) error

	// Delete removes the entry with the given ID if it belongs to userID.
	// Returns ErrCartItemNotFound otherwise.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// DeleteByUserID removes every cart entry owned by the user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
