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

// AddressHandler holds dependencies for the address endpoints.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by
// Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateDeliveryAddress handles a buyer saving a drop-off point.
func (h *AddressHandler) CreateDeliveryAddress(c echo.Context) error {
	var input *usecase.CreateDeliveryAddressInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Invalid address input", "")
	}

	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed
	}

	address, err := h.uc.CreateDeliveryAddress(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Address saved successfully")
}

// CreateRiderLocation handles the rider app's location capture.
func (h *AddressHandler) CreateRiderLocation(c echo.Context) error {
	var input *usecase.CreateRiderLocationInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Invalid location input", "")
	}

	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed
	}

	location, err := h.uc.CreateRiderLocation(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "Rider location saved successfully")
}
