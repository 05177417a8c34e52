package handler

import (
	"log/slog"
	"net/http"

	"agriconnect/internal/delivery/http/response"
	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for the product endpoints.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by
// Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateProduct handles the product creation request.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Invalid product input", "")
	}

	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"productId": product.ProductID,
		"product":   product,
	}, "Product created successfully")
}

// UpdateProduct handles the partial product update request.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID := c.Param("productId")

	// Bound as a value so an empty body is a valid no-op update.
	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Invalid product input", "")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), productID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}
