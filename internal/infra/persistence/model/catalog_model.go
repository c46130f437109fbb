package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// BeforeCreate assigns the opaque document id before insert.
func (m *CategoryModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key"`
	Name                 string    `gorm:"type:varchar(150);not null"`
	Description          string    `gorm:"type:text"`
	Price                float64   `gorm:"not null"`
	CategoryID           uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageURL             string    `gorm:"type:text"`
	StockQuantity        int       `gorm:"not null"`
	OrganicCertification bool      `gorm:"not null;default:true"`
	FarmOrigin           string    `gorm:"type:varchar(150)"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns the opaque document id before insert.
func (m *ProductModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
