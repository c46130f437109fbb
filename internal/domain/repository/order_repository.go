package repository

import (
	"context"
	"errors"
	"time"

	"grocer/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist, or exists but
// belongs to a different owner on an owner-scoped read. Callers cannot tell
// the two cases apart.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// Create persists a new order with its snapshotted line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByIDForOwner retrieves an order by ID scoped to the owning user.
	FindByIDForOwner(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error)

	// FindByID retrieves an order by ID regardless of owner. Admin use only.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUserID returns up to limit orders owned by the user, newest first.
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Order, error)

	// List returns up to limit orders across all users, newest first.
	List(ctx context.Context, limit int) ([]*entity.Order, error)

	// UpdateStatus overwrites the order status and updated timestamp.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error
}
