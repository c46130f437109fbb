package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItemModel mirrors the 'cart_items' table. The composite unique index on
// (user_id, product_id) is what makes the add-to-cart upsert atomic: two
// concurrent adds for the same product land on the same row instead of
// inserting duplicates.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// BeforeCreate assigns the opaque document id before insert.
func (m *CartItemModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
