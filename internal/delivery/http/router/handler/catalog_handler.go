package handler

import (
	"log/slog"
	"net/http"

	"grocer/internal/delivery/http/response"
	"grocer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for category and product endpoints.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CategoryRequest represents the request body for creating or updating a category.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// ProductRequest represents the request body for creating or updating a product.
type ProductRequest struct {
	Name                 string  `json:"name" validate:"required"`
	Description          string  `json:"description"`
	Price                float64 `json:"price" validate:"required,gt=0"`
	CategoryID           string  `json:"category_id" validate:"required,uuid"`
	ImageURL             string  `json:"image_url"`
	StockQuantity        int     `json:"stock_quantity" validate:"gte=0"`
	OrganicCertification *bool   `json:"organic_certification"`
	FarmOrigin           string  `json:"farm_origin"`
}

func (r *ProductRequest) toInput() usecase.ProductInput {
	// Certification defaults to true for an organic storefront.
	organic := true
	if r.OrganicCertification != nil {
		organic = *r.OrganicCertification
	}

	return usecase.ProductInput{
		Name:                 r.Name,
		Description:          r.Description,
		Price:                r.Price,
		CategoryID:           uuid.MustParse(r.CategoryID),
		ImageURL:             r.ImageURL,
		StockQuantity:        r.StockQuantity,
		OrganicCertification: organic,
		FarmOrigin:           r.FarmOrigin,
	}
}

// ListCategories handles the public category listing.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// CreateCategory handles category creation. Admin only.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// UpdateCategory handles category updates. Admin only.
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.NotFound(c, "CATEGORY_NOT_FOUND", "Category not found")
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.catalogUC.UpdateCategory(c.Request().Context(), id, usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, category, "Category updated successfully")
}

// DeleteCategory handles category removal. Admin only.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.NotFound(c, "CATEGORY_NOT_FOUND", "Category not found")
	}

	if err := h.catalogUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}

// ListProducts handles the public product listing with an optional
// category_id filter.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var categoryID *uuid.UUID
	if raw := c.QueryParam("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "category_id must be a valid UUID")
		}
		categoryID = &id
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), categoryID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct handles the public single-product read.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product not found")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, product, "")
}

// CreateProduct handles product creation. Admin only.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles product updates. Admin only.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product not found")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct handles product removal. Admin only.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product not found")
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// parseIDParam parses the :id path parameter. A malformed ID can never match
// a stored row, so callers translate the failure to their own not-found.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}
