package usecase

import (
	"context"
)

// SendPushInput carries an ad-hoc push request.
type SendPushInput struct {
	ExpoPushToken string `json:"expoPushToken" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Body          string `json:"body" validate:"required"`
}

// NotificationUsecase sends push notifications outside of any order
// workflow. The gateway's raw response is forwarded to the caller.
type NotificationUsecase interface {
	SendDirect(ctx context.Context, input *SendPushInput) (map[string]any, error)
}
