package impl

import (
	"context"
	"log/slog"

	"agriconnect/internal/domain/service"
	"agriconnect/internal/usecase"

	"github.com/pkg/errors"
)

type notificationService struct {
	logger *slog.Logger
	push   service.PushService
}

// NewNotificationService creates the ad-hoc push service.
func NewNotificationService(
	logger *slog.Logger,
	push service.PushService,
) usecase.NotificationUsecase {
	return &notificationService{
		logger: logger,
		push:   push,
	}
}

// SendDirect forwards one notification to the push gateway and hands
// the gateway's decoded response back unmodified.
func (s *notificationService) SendDirect(ctx context.Context, input *usecase.SendPushInput) (map[string]any, error) {
	resp, err := s.push.Send(ctx, service.PushMessage{
		To:    input.ExpoPushToken,
		Sound: "default",
		Title: input.Title,
		Body:  input.Body,
	})
	if err != nil {
		return nil, errors.Wrap(err, "send push notification")
	}

	s.logger.Info("push notification sent", slog.String("title", input.Title))

	return resp, nil
}
