package usecase

import (
	"context"

	"grocer/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderLineInput is one client-supplied line item. Name and price are
// snapshots taken by the storefront at checkout time; later catalog changes
// never touch a placed order.
type OrderLineInput struct {
	ProductID   uuid.UUID
	ProductName string
	Price       float64
	Quantity    int
}

// PlaceOrderInput defines the data for placing an order.
type PlaceOrderInput struct {
	Items           []OrderLineInput
	DeliveryAddress string
	PaymentMethod   string
}

// OrderUsecase defines the interface for order placement and fulfillment.
type OrderUsecase interface {
	// PlaceOrder records a new pending order from the supplied line items,
	// totalled server-side, and clears the caller's cart as a side effect.
	PlaceOrder(ctx context.Context, userID uuid.UUID, input PlaceOrderInput) (*entity.Order, error)

	// ListOrders returns the caller's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrder retrieves one of the caller's orders. An order owned by someone
	// else is reported as not found.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// ListAllOrders returns orders across all users, newest first. Admin only.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)

	// SetStatus moves an order to the given fulfillment status. Terminal
	// orders (delivered, cancelled) refuse further changes. Admin only.
	SetStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
