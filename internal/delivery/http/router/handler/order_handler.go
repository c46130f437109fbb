package handler

import (
	"log/slog"
	"net/http"

	"grocer/internal/delivery/http/middleware"
	"grocer/internal/delivery/http/response"
	"grocer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for customer order endpoints.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is one line item of an order as posted by the storefront,
// with the product name and unit price snapshotted at checkout time.
type OrderItemRequest struct {
	ProductID   string  `json:"product_id" validate:"required,uuid"`
	ProductName string  `json:"product_name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
}

// PlaceOrderRequest represents the request body for placing an order.
type PlaceOrderRequest struct {
	Items           []OrderItemRequest `json:"items" validate:"dive"`
	DeliveryAddress string             `json:"delivery_address" validate:"required"`
	PaymentMethod   string             `json:"payment_method" validate:"required"`
}

// PlaceOrder records a pending order from the posted line items.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	items := make([]usecase.OrderLineInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderLineInput{
			ProductID:   uuid.MustParse(item.ProductID),
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), user.ID, usecase.PlaceOrderInput{
		Items:           items,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// ListOrders returns the caller's own orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	user := middleware.CurrentUser(c)

	orders, err := h.orderUC.ListOrders(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetOrder returns one of the caller's orders. Someone else's order reads as
// not found.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	user := middleware.CurrentUser(c)

	id, err := parseIDParam(c)
	if err != nil {
		return response.NotFound(c, "ORDER_NOT_FOUND", "Order not found")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), user.ID, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order, "")
}
