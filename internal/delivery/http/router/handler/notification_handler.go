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

// NotificationHandler holds dependencies for the ad-hoc push endpoint.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler,
// injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// SendNotification forwards one push notification to the gateway and
// returns the gateway's response verbatim.
func (h *NotificationHandler) SendNotification(c echo.Context) error {
	var input *usecase.SendPushInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "Invalid notification input", "")
	}

	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed
	}

	resp, err := h.uc.SendDirect(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resp, "Notification sent successfully")
}
