package postgres

import (
	"context"

	"grocer/internal/domain/entity"
	domainerrors "grocer/internal/domain/errors"
	"grocer/internal/domain/repository"
	"grocer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain's ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).First(&productM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// List returns up to limit products, optionally filtered by category.
func (repo *productRepository) List(ctx context.Context, categoryID *uuid.UUID, limit int) ([]*entity.Product, error) {
	tx := repo.db.WithContext(ctx).Order("created_at ASC").Limit(limit)
	if categoryID != nil {
		tx = tx.Where("category_id = ?", *categoryID)
	}

	var models []*model.ProductModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(models))
	for _, productM := range models {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Create persists a new product entity.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("product references unknown category")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product entity.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	// Full-field map update so zero values (out of stock, non-organic) persist.
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":                  productM.Name,
			"description":           productM.Description,
			"price":                 productM.Price,
			"category_id":           productM.CategoryID,
			"image_url":             productM.ImageURL,
			"stock_quantity":        productM.StockQuantity,
			"organic_certification": productM.OrganicCertification,
			"farm_origin":           productM.FarmOrigin,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:                   data.ID,
		Name:                 data.Name,
		Description:          data.Description,
		Price:                data.Price,
		CategoryID:           data.CategoryID,
		ImageURL:             data.ImageURL,
		StockQuantity:        data.StockQuantity,
		OrganicCertification: data.OrganicCertification,
		FarmOrigin:           data.FarmOrigin,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                   data.ID,
		Name:                 data.Name,
		Description:          data.Description,
		Price:                data.Price,
		CategoryID:           data.CategoryID,
		ImageURL:             data.ImageURL,
		StockQuantity:        data.StockQuantity,
		OrganicCertification: data.OrganicCertification,
		FarmOrigin:           data.FarmOrigin,
	}
}
