package repository

import (
	"context"
	"errors"

	"grocer/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// CategoryRepository defines the operations for catalog category persistence.
type CategoryRepository interface {
	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// List returns up to limit categories, oldest first.
	List(ctx context.Context, limit int) ([]*entity.Category, error)

	// Count returns the number of categories in the store.
	Count(ctx context.Context) (int64, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines the operations for catalog product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns up to limit products, optionally filtered by category.
	// A nil categoryID means no filter.
	List(ctx context.Context, categoryID *uuid.UUID, limit int) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
