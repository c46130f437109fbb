package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"grocer/internal/delivery/http/middleware"
	"grocer/internal/delivery/http/validator"
	"grocer/internal/domain/entity"
	"grocer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingOrderUsecase captures the input the handler hands to the ledger.
type recordingOrderUsecase struct {
	placedWith *usecase.PlaceOrderInput
	placedBy   uuid.UUID
}

func (u *recordingOrderUsecase) PlaceOrder(_ context.Context, userID uuid.UUID, input usecase.PlaceOrderInput) (*entity.Order, error) {
	u.placedBy = userID
	u.placedWith = &input

	total := 0.0
	for _, item := range input.Items {
		total += item.Price * float64(item.Quantity)
	}

	return &entity.Order{
		ID:          uuid.New(),
		UserID:      userID,
		TotalAmount: total,
		Status:      entity.OrderStatusPending,
	}, nil
}

func (u *recordingOrderUsecase) ListOrders(context.Context, uuid.UUID) ([]*entity.Order, error) {
	return nil, nil
}

func (u *recordingOrderUsecase) GetOrder(context.Context, uuid.UUID, uuid.UUID) (*entity.Order, error) {
	return nil, nil
}

func (u *recordingOrderUsecase) ListAllOrders(context.Context) ([]*entity.Order, error) {
	return nil, nil
}

func (u *recordingOrderUsecase) SetStatus(context.Context, uuid.UUID, entity.OrderStatus) (*entity.Order, error) {
	return nil, nil
}

func postOrder(t *testing.T, h *OrderHandler, user *entity.User, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.KeyCurrentUser, user)

	require.NoError(t, h.PlaceOrder(c))

	return rec
}

func TestOrderHandler_PlaceOrder_ForwardsSuppliedLineItems(t *testing.T) {
	uc := &recordingOrderUsecase{}
	h := NewOrderHandler(OrderHandlerParams{OrderUC: uc, Logger: slog.New(slog.DiscardHandler)})
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	appleID := uuid.New()
	riceID := uuid.New()
	body := `{
		"items": [
			{"product_id": "` + appleID.String() + `", "product_name": "Organic Apples (Seb)", "price": 80.0, "quantity": 2},
			{"product_id": "` + riceID.String() + `", "product_name": "Organic Basmati Rice", "price": 120.0, "quantity": 1}
		],
		"delivery_address": "42 MG Road, Pune",
		"payment_method": "card"
	}`

	rec := postOrder(t, h, user, body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// The posted line items reach the ledger verbatim, price pairs included.
	require.NotNil(t, uc.placedWith)
	assert.Equal(t, user.ID, uc.placedBy)
	require.Len(t, uc.placedWith.Items, 2)
	assert.Equal(t, appleID, uc.placedWith.Items[0].ProductID)
	assert.Equal(t, "Organic Apples (Seb)", uc.placedWith.Items[0].ProductName)
	assert.Equal(t, 80.0, uc.placedWith.Items[0].Price)
	assert.Equal(t, 2, uc.placedWith.Items[0].Quantity)
	assert.Equal(t, riceID, uc.placedWith.Items[1].ProductID)
	assert.Equal(t, "42 MG Road, Pune", uc.placedWith.DeliveryAddress)
	assert.Equal(t, "card", uc.placedWith.PaymentMethod)

	assert.Contains(t, rec.Body.String(), `"total_amount":280`)
}

func TestOrderHandler_PlaceOrder_RejectsBadLineItem(t *testing.T) {
	uc := &recordingOrderUsecase{}
	h := NewOrderHandler(OrderHandlerParams{OrderUC: uc, Logger: slog.New(slog.DiscardHandler)})
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	body := `{
		"items": [{"product_id": "not-a-uuid", "product_name": "x", "price": 10.0, "quantity": 1}],
		"delivery_address": "x",
		"payment_method": "cod"
	}`

	rec := postOrder(t, h, user, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.placedWith)
}
