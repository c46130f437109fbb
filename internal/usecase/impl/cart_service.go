package impl

import (
	"context"
	"log/slog"

	deliverycontext "grocer/internal/delivery/context"
	"grocer/internal/domain/constants"
	"grocer/internal/domain/entity"
	domainerrors "grocer/internal/domain/errors"
	"grocer/internal/domain/repository"
	"grocer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the caller's cart entries with product details attached.
// Entries pointing at deleted catalog items are kept with a nil product so
// the storefront can render a placeholder instead of silently dropping rows.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) ([]*usecase.CartEntry, error) {
	items, err := srv.cartRepo.ListByUserID(ctx, userID, constants.ListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	entries := make([]*usecase.CartEntry, 0, len(items))
	for _, item := range items {
		product, err := srv.productRepo.FindByID(ctx, item.ProductID)
		if err != nil && !errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(err, "failed to load cart product")
		}

		entries = append(entries, &usecase.CartEntry{Item: item, Product: product})
	}

	return entries, nil
}

// AddToCart inserts a cart entry or bumps the quantity of an existing one.
// The product must exist at add time; the upsert itself is a single atomic
// statement, so concurrent adds accumulate instead of clobbering each other.
func (srv *cartService) AddToCart(ctx context.Context, userID uuid.UUID, input usecase.AddToCartInput) (*entity.CartItem, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to check product")
	}

	item := &entity.CartItem{
		UserID:    userID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}

	if err := srv.cartRepo.Upsert(ctx, item); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Cart item upserted",
		slog.Any("userID", userID),
		slog.Any("productID", input.ProductID),
		slog.Int("quantity", item.Quantity),
	)

	return item, nil
}

// RemoveFromCart deletes one cart entry owned by the caller. A row belonging
// to another user reads as not found.
func (srv *cartService) RemoveFromCart(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := srv.cartRepo.Delete(ctx, itemID, userID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return err
	}

	return nil
}
