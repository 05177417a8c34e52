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

// StoreHandler holds dependencies for the storefront endpoints.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateStore handles the storefront creation request.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var input *usecase.CreateStoreInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Invalid store input", "")
	}

	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed
	}

	store, err := h.uc.CreateStore(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"storeId":  store.StoreID,
		"geoPoint": store.GeoPoint,
	}, "Store created successfully")
}

// UpdateStore handles the partial storefront update request.
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	storeID := c.Param("storeId")

	// Bound as a value so an empty body is a valid no-op update.
	var input usecase.UpdateStoreInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Invalid store input", "")
	}

	store, err := h.uc.UpdateStore(c.Request().Context(), storeID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store updated successfully")
}
