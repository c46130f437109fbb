package impl

import (
	"context"
	"log/slog"

	deliverycontext "grocer/internal/delivery/context"
	"grocer/internal/domain/constants"
	"grocer/internal/domain/entity"
	domainerrors "grocer/internal/domain/errors"
	"grocer/internal/domain/repository"
	"grocer/internal/domain/service"
	"grocer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	hasher       service.PasswordHasher
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	Hasher       service.PasswordHasher
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		hasher:       params.Hasher,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns the store's categories, oldest first.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx, constants.ListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateCategory adds a new category to the catalog.
func (srv *catalogService) CreateCategory(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.String("name", category.Name))

	return category, nil
}

// UpdateCategory modifies an existing category.
func (srv *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, input usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, err
	}

	return srv.categoryRepo.FindByID(ctx, id)
}

// DeleteCategory removes a category. Products under the category keep their
// dangling reference, matching the store's loose catalog linkage.
func (srv *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return err
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", id))

	return nil
}

// ListProducts returns products, optionally filtered by category.
func (srv *catalogService) ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, categoryID, constants.ListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct retrieves a single product.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	return product, nil
}

// CreateProduct adds a new product to the catalog.
func (srv *catalogService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(input)

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

// UpdateProduct modifies an existing product.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(input)
	product.ID = id

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	return srv.productRepo.FindByID(ctx, id)
}

// DeleteProduct removes a product.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

// InitializeData seeds the default catalog and admin account inside a single
// transaction. The category count acts as the idempotency guard: a store with
// any categories is considered initialized and left untouched.
func (srv *catalogService) InitializeData(ctx context.Context) (bool, error) {
	seeded := false

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()
		productRepo := repoFactory.ProductRepo()
		userRepo := repoFactory.UserRepo()

		count, err := categoryRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count categories")
		}
		if count > 0 {
			return nil
		}

		categoryIDs := make(map[string]uuid.UUID, len(seedCategories))
		for _, sc := range seedCategories {
			category := &entity.Category{
				Name:        sc.Name,
				Description: sc.Description,
				ImageURL:    sc.ImageURL,
			}
			if err := categoryRepo.Create(ctx, category); err != nil {
				return errors.Wrapf(err, "failed to seed category %q", sc.Name)
			}
			categoryIDs[sc.Name] = category.ID
		}

		for _, sp := range seedProducts {
			product := &entity.Product{
				Name:                 sp.Name,
				Description:          sp.Description,
				Price:                sp.Price,
				CategoryID:           categoryIDs[sp.Category],
				ImageURL:             sp.ImageURL,
				StockQuantity:        sp.StockQuantity,
				OrganicCertification: true,
				FarmOrigin:           sp.FarmOrigin,
			}
			if err := productRepo.Create(ctx, product); err != nil {
				return errors.Wrapf(err, "failed to seed product %q", sp.Name)
			}
		}

		adminHash, err := srv.hasher.Hash(seedAdminPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash seed admin password")
		}

		admin := &entity.User{
			Email:        seedAdminEmail,
			Name:         seedAdminName,
			Role:         entity.RoleAdmin,
			PasswordHash: adminHash,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			return errors.Wrap(err, "failed to seed admin account")
		}

		seeded = true

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Data initialization failed", slog.Any("error", err))

		return false, err
	}

	if seeded {
		srv.log(ctx).Info("Initial data created",
			slog.Int("categories", len(seedCategories)),
			slog.Int("products", len(seedProducts)),
		)
	} else {
		srv.log(ctx).Debug("Data already initialized, skipping seed")
	}

	return seeded, nil
}

func productFromInput(input usecase.ProductInput) *entity.Product {
	return &entity.Product{
		Name:                 input.Name,
		Description:          input.Description,
		Price:                input.Price,
		CategoryID:           input.CategoryID,
		ImageURL:             input.ImageURL,
		StockQuantity:        input.StockQuantity,
		OrganicCertification: input.OrganicCertification,
		FarmOrigin:           input.FarmOrigin,
	}
}
