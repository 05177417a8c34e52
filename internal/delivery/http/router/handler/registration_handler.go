// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"agriconnect/internal/delivery/http/response"
	"agriconnect/internal/domain/entity"
	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegistrationHandler holds dependencies for the signup endpoints.
type RegistrationHandler struct {
	uc     usecase.RegistrationUsecase
	logger *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler,
// injected by Fx.
func NewRegistrationHandler(uc usecase.RegistrationUsecase, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterBuyer handles the buyer signup request.
func (h *RegistrationHandler) RegisterBuyer(c echo.Context) error {
	input, err := h.bindInput(c, entity.RoleBuyer)
	if err != nil {
		return err
	}

	output, err := h.uc.RegisterBuyer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Buyer registered successfully")
}

// RegisterSeller handles the seller signup request.
func (h *RegistrationHandler) RegisterSeller(c echo.Context) error {
	input, err := h.bindInput(c, entity.RoleSeller)
	if err != nil {
		return err
	}

	output, err := h.uc.RegisterSeller(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Seller registered successfully")
}

// RegisterRider handles the rider signup request.
func (h *RegistrationHandler) RegisterRider(c echo.Context) error {
	input, err := h.bindInput(c, entity.RoleRider)
	if err != nil {
		return err
	}
	if input.Vehicle == "" {
		return domainerrors.ErrValidationFailed
	}

	output, err := h.uc.RegisterRider(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Rider registered successfully")
}

// bindInput binds the signup form and pins the role to the endpoint's
// role regardless of what the client sent. Failures come back as
// AppErrors so the error handler renders the envelope.
func (h *RegistrationHandler) bindInput(c echo.Context, role entity.Role) (*usecase.RegisterInput, error) {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return nil, domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Invalid registration input", "")
	}

	if err := c.Validate(input); err != nil {
		return nil, domainerrors.ErrValidationFailed
	}
	input.Role = string(role)

	return input, nil
}
