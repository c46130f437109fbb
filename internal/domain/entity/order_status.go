package entity

// OrderStatus represents the fulfillment state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial state assigned at placement.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed means the order has been accepted by an admin.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusPreparing means the order is being packed.
	OrderStatusPreparing OrderStatus = "preparing"
	// OrderStatusShipped means the order has left the warehouse.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered means the order reached the customer. Terminal.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled means the order was cancelled. Terminal.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status ends the order lifecycle.
// Delivered and cancelled orders cannot be moved to another status.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether an admin may move an order from s to next.
// Non-terminal states may move anywhere; terminal states are locked.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.IsValid() {
		return false
	}

	return !s.IsTerminal()
}
