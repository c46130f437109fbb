package handler

import (
	"log/slog"
	"net/http"

	"grocer/internal/delivery/http/response"
	"grocer/internal/domain/entity"
	"grocer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	UserUC  usecase.UserUsecase
	Logger  *slog.Logger
}

// AdminHandler holds dependencies for the fulfillment and account surface.
type AdminHandler struct {
	orderUC usecase.OrderUsecase
	userUC  usecase.UserUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		orderUC: params.OrderUC,
		userUC:  params.UserUC,
		logger:  params.Logger,
	}
}

// UpdateOrderStatusRequest represents the request body for a status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListAllOrders returns orders across every customer, newest first.
func (h *AdminHandler) ListAllOrders(c echo.Context) error {
	orders, err := h.orderUC.ListAllOrders(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// UpdateOrderStatus moves an order along the fulfillment pipeline.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.NotFound(c, "ORDER_NOT_FOUND", "Order not found")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.SetStatus(c.Request().Context(), id, entity.OrderStatus(req.Status))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

// ListUsers returns the registered accounts. Password hashes never serialize.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, users, "")
}
