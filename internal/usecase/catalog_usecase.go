package usecase

import (
	"context"

	"grocer/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CategoryInput defines the data for creating or updating a category.
type CategoryInput struct {
	Name        string
	Description string
	ImageURL    string
}

// ProductInput defines the data for creating or updating a product.
type ProductInput struct {
	Name                 string
	Description          string
	Price                float64
	CategoryID           uuid.UUID
	ImageURL             string
	StockQuantity        int
	OrganicCertification bool
	FarmOrigin           string
}

// CatalogUsecase defines the interface for catalog browsing and maintenance.
// Reads are public; writes are reserved for admin accounts at the delivery layer.
type CatalogUsecase interface {
	// ListCategories returns the store's categories, oldest first.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateCategory adds a new category to the catalog.
	CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error)

	// UpdateCategory modifies an existing category.
	UpdateCategory(ctx context.Context, id uuid.UUID, input CategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// ListProducts returns products, optionally filtered by category.
	ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Product, error)

	// GetProduct retrieves a single product.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// CreateProduct adds a new product to the catalog.
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct modifies an existing product.
	UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// InitializeData seeds the default catalog and admin account. The seed is
	// idempotent: a store that already has categories is left untouched.
	InitializeData(ctx context.Context) (bool, error)
}
