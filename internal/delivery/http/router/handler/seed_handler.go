package handler

import (
	"log/slog"
	"net/http"

	"grocer/internal/delivery/http/response"
	"grocer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SeedHandlerParams holds dependencies for SeedHandler, injected by Fx.
type SeedHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// SeedHandler exposes the one-shot data initialization endpoint.
type SeedHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewSeedHandler is the constructor for SeedHandler.
func NewSeedHandler(params SeedHandlerParams) *SeedHandler {
	return &SeedHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// InitData seeds the default catalog and admin account. Calling it on an
// already-initialized store is a harmless no-op.
func (h *SeedHandler) InitData(c echo.Context) error {
	seeded, err := h.catalogUC.InitializeData(c.Request().Context())
	if err != nil {
		return err
	}

	message := "Initial data created successfully"
	if !seeded {
		message = "Data already initialized"
	}

	return response.Success(c, http.StatusOK, map[string]bool{"seeded": seeded}, message)
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
