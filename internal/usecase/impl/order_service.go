package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

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

const publishTimeout = 10 * time.Second

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	CartRepo  repository.CartRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		cartRepo:  params.CartRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder records a new pending order from the supplied line items. The
// total is always recomputed server-side from the per-item price and quantity
// pairs; a client-sent total is never trusted. The cart is cleared after the
// order is persisted; a clear failure leaves stale cart rows behind, which is
// logged loudly but never fails an already-placed order.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}

	lines := make([]entity.OrderItem, 0, len(input.Items))
	total := 0.0
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("line item quantity must be positive")
		}
		if item.Price < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("line item price must not be negative")
		}

		lines = append(lines, entity.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
		total += item.Price * float64(item.Quantity)
	}

	order := &entity.Order{
		UserID:          userID,
		Items:           lines,
		TotalAmount:     roundCurrency(total),
		Status:          entity.OrderStatusPending,
		DeliveryAddress: input.DeliveryAddress,
		PaymentMethod:   input.PaymentMethod,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	if err := srv.cartRepo.DeleteByUserID(ctx, userID); err != nil {
		srv.log(ctx).Warn("Failed to clear cart after order placement, stale cart rows remain",
			slog.Any("userID", userID),
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Any("userID", userID),
		slog.Float64("total", order.TotalAmount),
	)

	srv.publishEvent(ctx, service.OrderEventPlaced, order)

	return order, nil
}

// ListOrders returns the caller's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUserID(ctx, userID, constants.ListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder retrieves one of the caller's orders. An order owned by someone
// else reads as not found, so the endpoint never leaks order existence.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByIDForOwner(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// ListAllOrders returns orders across all users, newest first.
func (srv *orderService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, constants.ListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}

// SetStatus moves an order to the given fulfillment status.
// Delivered and cancelled orders are terminal and refuse further changes.
func (srv *orderService) SetStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WrapMessage("unknown order status: " + status.String())
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		current, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		if !current.Status.CanTransitionTo(status) {
			return domainerrors.ErrOrderStatusLocked.WrapMessage(
				"order is already " + current.Status.String())
		}

		now := time.Now().UTC()
		if err := orderRepo.UpdateStatus(ctx, orderID, status, now); err != nil {
			return err
		}

		current.Status = status
		current.UpdatedAt = now
		order = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status updated",
		slog.Any("orderID", orderID),
		slog.String("status", status.String()),
	)

	srv.publishEvent(ctx, service.OrderEventStatusChanged, order)

	return order, nil
}

// publishEvent emits an order lifecycle event in the background. Delivery is
// best-effort: a broker outage must never fail the storefront request.
func (srv *orderService) publishEvent(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		Type:        eventType,
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now().UTC(),
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
	}

	logger := srv.log(ctx)

	go func() {
		publishCtx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := srv.publisher.PublishOrderEvent(publishCtx, event); err != nil {
			logger.Warn("Failed to publish order event",
				slog.String("type", eventType),
				slog.String("orderID", event.OrderID),
				slog.Any("error", err),
			)
		}
	}()
}

// roundCurrency rounds to two decimal places using banker's rounding, keeping
// repeated totals from drifting upward.
func roundCurrency(amount float64) float64 {
	return math.RoundToEven(amount*100) / 100
}
