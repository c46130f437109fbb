package impl

import (
	"context"
	"log/slog"
	"testing"

	"grocer/internal/domain/entity"
	domainerrors "grocer/internal/domain/errors"
	"grocer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServiceForTest() (usecase.CatalogUsecase, *fakeFactory) {
	factory := &fakeFactory{
		userRepo:     &fakeUserRepo{},
		categoryRepo: &fakeCategoryRepo{},
		productRepo:  &fakeProductRepo{},
	}

	svc := NewCatalogService(CatalogServiceParams{
		TxManager:    &fakeTxManager{factory: factory},
		CategoryRepo: factory.categoryRepo,
		ProductRepo:  factory.productRepo,
		Hasher:       fakeHasher{},
		Logger:       slog.New(slog.DiscardHandler),
	})

	return svc, factory
}

func TestCatalogService_CategoryCRUD(t *testing.T) {
	svc, _ := newCatalogServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, usecase.CategoryInput{
		Name:        "Fresh Vegetables",
		Description: "Organic vegetables freshly harvested from local farms",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	updated, err := svc.UpdateCategory(ctx, created.ID, usecase.CategoryInput{
		Name:        "Vegetables",
		Description: "Renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, "Vegetables", updated.Name)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)

	require.NoError(t, svc.DeleteCategory(ctx, created.ID))

	categories, err = svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCatalogService_CategoryNotFound(t *testing.T) {
	svc, _ := newCatalogServiceForTest()
	ctx := context.Background()

	_, err := svc.UpdateCategory(ctx, uuid.New(), usecase.CategoryInput{Name: "x"})
	require.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)

	err = svc.DeleteCategory(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_ProductCRUD(t *testing.T) {
	svc, _ := newCatalogServiceForTest()
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, usecase.CategoryInput{Name: "Fresh Fruits"})
	require.NoError(t, err)

	created, err := svc.CreateProduct(ctx, usecase.ProductInput{
		Name:                 "Organic Mangoes (Aam)",
		Price:                320.0,
		CategoryID:           category.ID,
		StockQuantity:        45,
		OrganicCertification: true,
		FarmOrigin:           "Ratnagiri Organic Farms",
	})
	require.NoError(t, err)

	fetched, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 320.0, fetched.Price)
	assert.True(t, fetched.OrganicCertification)

	updated, err := svc.UpdateProduct(ctx, created.ID, usecase.ProductInput{
		Name:          "Organic Mangoes (Aam)",
		Price:         299.0,
		CategoryID:    category.ID,
		StockQuantity: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 299.0, updated.Price)
	assert.Zero(t, updated.StockQuantity)

	require.NoError(t, svc.DeleteProduct(ctx, created.ID))

	_, err = svc.GetProduct(ctx, created.ID)
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListProductsByCategory(t *testing.T) {
	svc, _ := newCatalogServiceForTest()
	ctx := context.Background()

	fruits, err := svc.CreateCategory(ctx, usecase.CategoryInput{Name: "Fresh Fruits"})
	require.NoError(t, err)
	dairy, err := svc.CreateCategory(ctx, usecase.CategoryInput{Name: "Dairy Products"})
	require.NoError(t, err)

	_, err = svc.CreateProduct(ctx, usecase.ProductInput{Name: "Organic Bananas (Kela)", Price: 60, CategoryID: fruits.ID})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, usecase.ProductInput{Name: "Organic Ghee", Price: 650, CategoryID: dairy.ID})
	require.NoError(t, err)

	all, err := svc.ListProducts(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyDairy, err := svc.ListProducts(ctx, &dairy.ID)
	require.NoError(t, err)
	require.Len(t, onlyDairy, 1)
	assert.Equal(t, "Organic Ghee", onlyDairy[0].Name)
}

func TestCatalogService_InitializeData(t *testing.T) {
	svc, factory := newCatalogServiceForTest()
	ctx := context.Background()

	seeded, err := svc.InitializeData(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 4)

	products, err := svc.ListProducts(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, products, 17)

	// Every seeded product points at a seeded category.
	knownCategories := make(map[uuid.UUID]bool, len(categories))
	for _, c := range categories {
		knownCategories[c.ID] = true
	}
	for _, p := range products {
		assert.True(t, knownCategories[p.CategoryID], "product %s has unknown category", p.Name)
	}

	admin, err := factory.userRepo.FindByEmail(ctx, "admin@organicfood.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.Equal(t, "hashed:admin123", admin.PasswordHash)
}

func TestCatalogService_InitializeData_Idempotent(t *testing.T) {
	svc, _ := newCatalogServiceForTest()
	ctx := context.Background()

	seeded, err := svc.InitializeData(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	seeded, err = svc.InitializeData(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 4)
}
