package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItemDoc is one snapshotted line item, stored inside the order row as a
// JSON document. Line items are frozen at placement and never joined back to
// the catalog, so later price or name changes leave past orders untouched.
type OrderItemDoc struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	Items           []OrderItemDoc `gorm:"serializer:json;type:jsonb;not null"`
	TotalAmount     float64        `gorm:"not null"`
	Status          string         `gorm:"type:varchar(20);not null;default:'pending'"`
	DeliveryAddress string         `gorm:"type:text;not null"`
	PaymentMethod   string         `gorm:"type:varchar(50);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// BeforeCreate assigns the opaque document id before insert.
func (m *OrderModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
