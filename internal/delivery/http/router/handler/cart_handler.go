package handler

import (
	"log/slog"
	"net/http"
	"time"

	"grocer/internal/delivery/http/middleware"
	"grocer/internal/delivery/http/response"
	"grocer/internal/domain/entity"
	"grocer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for shopping cart endpoints.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddToCartRequest represents the request body for adding a product to the cart.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CartEntryView is one cart row with its catalog product attached for display.
type CartEntryView struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Product   *entity.Product `json:"product,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// GetCart returns the caller's cart with product details.
func (h *CartHandler) GetCart(c echo.Context) error {
	user := middleware.CurrentUser(c)

	entries, err := h.cartUC.GetCart(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	views := make([]CartEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, CartEntryView{
			ID:        entry.Item.ID,
			ProductID: entry.Item.ProductID,
			Quantity:  entry.Item.Quantity,
			Product:   entry.Product,
			CreatedAt: entry.Item.CreatedAt,
			UpdatedAt: entry.Item.UpdatedAt,
		})
	}

	return response.Success(c, http.StatusOK, views, "")
}

// AddToCart inserts or accumulates a cart entry for the caller.
func (h *CartHandler) AddToCart(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.cartUC.AddToCart(c.Request().Context(), user.ID, usecase.AddToCartInput{
		ProductID: uuid.MustParse(req.ProductID),
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, item, "Item added to cart")
}

// RemoveFromCart deletes one of the caller's cart entries.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	user := middleware.CurrentUser(c)

	id, err := parseIDParam(c)
	if err != nil {
		return response.NotFound(c, "CART_ITEM_NOT_FOUND", "Cart item not found")
	}

	if err := h.cartUC.RemoveFromCart(c.Request().Context(), user.ID, id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Item removed from cart")
}
