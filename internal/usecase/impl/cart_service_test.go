package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"grocer/internal/domain/entity"
	domainerrors "grocer/internal/domain/errors"
	"grocer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartServiceForTest() (usecase.CartUsecase, *fakeProductRepo, *fakeCartRepo) {
	productRepo := &fakeProductRepo{}
	cartRepo := &fakeCartRepo{}

	svc := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      slog.New(slog.DiscardHandler),
	})

	return svc, productRepo, cartRepo
}

func seedProductForCart(t *testing.T, productRepo *fakeProductRepo, name string, price float64) *entity.Product {
	t.Helper()
	product := &entity.Product{Name: name, Price: price, CategoryID: uuid.New(), StockQuantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), product))

	return product
}

func TestCartService_AddToCart(t *testing.T) {
	svc, productRepo, _ := newCartServiceForTest()
	ctx := context.Background()
	userID := uuid.New()

	product := seedProductForCart(t, productRepo, "Organic Spinach (Palak)", 80)

	item, err := svc.AddToCart(ctx, userID, usecase.AddToCartInput{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, userID, item.UserID)
	assert.NotEqual(t, uuid.Nil, item.ID)
}

func TestCartService_AddToCart_AccumulatesQuantity(t *testing.T) {
	svc, productRepo, _ := newCartServiceForTest()
	ctx := context.Background()
	userID := uuid.New()

	product := seedProductForCart(t, productRepo, "Organic Tomatoes", 90)

	first, err := svc.AddToCart(ctx, userID, usecase.AddToCartInput{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	second, err := svc.AddToCart(ctx, userID, usecase.AddToCartInput{ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)

	// Same entry, accumulated quantity.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	entries, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Item.Quantity)
}

func TestCartService_AddToCart_InvalidQuantity(t *testing.T) {
	svc, productRepo, _ := newCartServiceForTest()
	product := seedProductForCart(t, productRepo, "Organic Paneer", 180)

	for _, quantity := range []int{0, -3} {
		_, err := svc.AddToCart(context.Background(), uuid.New(), usecase.AddToCartInput{
			ProductID: product.ID, Quantity: quantity,
		})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestCartService_AddToCart_UnknownProduct(t *testing.T) {
	svc, _, _ := newCartServiceForTest()

	_, err := svc.AddToCart(context.Background(), uuid.New(), usecase.AddToCartInput{
		ProductID: uuid.New(), Quantity: 1,
	})
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_GetCart_DeletedProductKeptWithNilProduct(t *testing.T) {
	svc, productRepo, _ := newCartServiceForTest()
	ctx := context.Background()
	userID := uuid.New()

	product := seedProductForCart(t, productRepo, "Organic Quinoa", 380)

	_, err := svc.AddToCart(ctx, userID, usecase.AddToCartInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, productRepo.Delete(ctx, product.ID))

	entries, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Product)
	assert.Equal(t, product.ID, entries[0].Item.ProductID)
}

func TestCartService_RemoveFromCart(t *testing.T) {
	svc, productRepo, _ := newCartServiceForTest()
	ctx := context.Background()
	userID := uuid.New()

	product := seedProductForCart(t, productRepo, "Organic Ghee", 650)

	item, err := svc.AddToCart(ctx, userID, usecase.AddToCartInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFromCart(ctx, userID, item.ID))

	entries, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCartService_RemoveFromCart_OtherOwnersEntry(t *testing.T) {
	svc, productRepo, _ := newCartServiceForTest()
	ctx := context.Background()
	owner := uuid.New()

	product := seedProductForCart(t, productRepo, "Organic Milk (Doodh)", 80)

	item, err := svc.AddToCart(ctx, owner, usecase.AddToCartInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	// Another user cannot remove the owner's entry, and cannot tell it exists.
	err = svc.RemoveFromCart(ctx, uuid.New(), item.ID)
	require.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)

	entries, err := svc.GetCart(ctx, owner)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.WithinDuration(t, time.Now(), entries[0].Item.CreatedAt, time.Minute)
}
