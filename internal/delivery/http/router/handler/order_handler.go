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

// OrderHandler holds dependencies for the order endpoints.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateOrder handles the full order creation request. The seller
// notification runs best-effort behind it; its failures never change
// the response.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var input *usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Invalid order input", "")
	}

	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// CreateOrderSummary handles the lightweight order endpoint. Unlike
// CreateOrder, the notification is part of the contract: a missing
// seller or token fails the request.
func (h *OrderHandler) CreateOrderSummary(c echo.Context) error {
	var input *usecase.CreateOrderSummaryInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Invalid order input", "")
	}

	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Missing sellerId or orderId")
	}

	if err := h.uc.CreateOrderSummary(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"orderId": input.OrderID}, "Order created and notification sent")
}
