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
	"gorm.io/gorm/clause"
)

// cartRepository implements the domain's CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// ListByUserID returns up to limit cart entries owned by the user.
func (repo *cartRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.CartItem, error) {
	var models []*model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	items := make([]*entity.CartItem, 0, len(models))
	for _, itemM := range models {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

// Upsert inserts the cart entry, or atomically increments the quantity of the
// existing (user_id, product_id) row. The increment happens inside a single
// INSERT ... ON CONFLICT statement, so concurrent adds for the same product
// never lose an update.
func (repo *cartRepository) Upsert(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
				"updated_at": gorm.Expr("EXCLUDED.updated_at"),
			}),
		}).
		Create(itemM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart item")
	}

	// On conflict the insert ID loses; read the winning row back so the
	// caller sees the real entry ID and accumulated quantity.
	var current model.CartItemModel
	if err := repo.db.WithContext(ctx).
		First(&current, "user_id = ? AND product_id = ?", item.UserID, item.ProductID).Error; err != nil {
		return errors.Wrap(err, "failed to reload cart item after upsert")
	}

	item.ID = current.ID
	item.Quantity = current.Quantity
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = current.UpdatedAt

	return nil
}

// Delete removes the entry with the given ID if it belongs to userID.
func (repo *cartRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Delete(&model.CartItemModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteByUserID removes every cart entry owned by the user.
func (repo *cartRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Delete(&model.CartItemModel{}, "user_id = ?", userID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

// --- Mapper Functions ---

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
	}
}
