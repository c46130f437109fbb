package postgres

import (
	"context"
	"time"

	"grocer/internal/domain/entity"
	domainerrors "grocer/internal/domain/errors"
	"grocer/internal/domain/repository"
	"grocer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain's OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order with its snapshotted line items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByIDForOwner retrieves an order by ID scoped to the owning user.
// An order that exists under a different owner is indistinguishable from a
// missing one.
func (repo *orderRepository) FindByIDForOwner(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).
		First(&orderM, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order for owner")
	}

	return toOrderDomain(&orderM), nil
}

// FindByID retrieves an order by ID regardless of owner.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).First(&orderM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUserID returns up to limit orders owned by the user, newest first.
func (repo *orderRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Order, error) {
	var models []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders for user")
	}

	return toOrderDomainSlice(models), nil
}

// List returns up to limit orders across all users, newest first.
func (repo *orderRepository) List(ctx context.Context, limit int) ([]*entity.Order, error) {
	var models []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomainSlice(models), nil
}

// UpdateStatus overwrites the order status and updated timestamp.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status.String(),
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, doc := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID:   doc.ProductID,
			ProductName: doc.ProductName,
			Price:       doc.Price,
			Quantity:    doc.Quantity,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		Items:           items,
		TotalAmount:     data.TotalAmount,
		Status:          entity.OrderStatus(data.Status),
		DeliveryAddress: data.DeliveryAddress,
		PaymentMethod:   data.PaymentMethod,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toOrderDomainSlice(models []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for _, orderM := range models {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemDoc, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemDoc{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Items:           items,
		TotalAmount:     data.TotalAmount,
		Status:          data.Status.String(),
		DeliveryAddress: data.DeliveryAddress,
		PaymentMethod:   data.PaymentMethod,
	}
}
