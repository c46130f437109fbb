package usecase

import (
	"context"

	"grocer/internal/domain/entity"

	"github.com/google/uuid"
)

// AddToCartInput defines the data for adding a product to the caller's cart.
type AddToCartInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CartEntry pairs a cart row with the catalog product it points at, ready for
// display. Product is nil when the catalog item has since been deleted.
type CartEntry struct {
	Item    *entity.CartItem
	Product *entity.Product
}

// CartUsecase defines the interface for shopping cart operations.
// Every operation is scoped to the authenticated owner.
type CartUsecase interface {
	// GetCart returns the caller's cart entries with product details attached.
	GetCart(ctx context.Context, userID uuid.UUID) ([]*CartEntry, error)

	// AddToCart inserts a cart entry or bumps the quantity of an existing one.
	AddToCart(ctx context.Context, userID uuid.UUID, input AddToCartInput) (*entity.CartItem, error)

	// RemoveFromCart deletes one cart entry owned by the caller.
	RemoveFromCart(ctx context.Context, userID, itemID uuid.UUID) error
}
