package service

import (
	"context"
	"time"

	"grocer/internal/domain/entity"
)

// Order event types published to the fulfillment pipeline.
const (
	OrderEventPlaced        = "order.placed"
	OrderEventStatusChanged = "order.status_changed"
)

// OrderEvent describes an order lifecycle change for downstream consumers
// (fulfillment dashboard, warehouse tooling).
type OrderEvent struct {
	Type        string             `json:"type"`
	OrderID     string             `json:"order_id"`
	UserID      string             `json:"user_id"`
	Status      entity.OrderStatus `json:"status"`
	TotalAmount float64            `json:"total_amount"`
	OccurredAt  time.Time          `json:"occurred_at"`
	RequestID   string             `json:"request_id,omitempty"`
}

// EventPublisher defines the interface for publishing order lifecycle events.
// Publishing is best-effort: the order ledger never fails a request because an
// event could not be delivered.
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases publisher resources.
	Close() error
}
