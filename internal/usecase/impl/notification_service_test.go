package impl

import (
	"context"
	"testing"

	"agriconnect/internal/domain/service"
	mockSvc "agriconnect/internal/mocks/service"
	"agriconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockSvc.MockPushService,
) {
	push := mockSvc.NewMockPushService(t)

	svc := NewNotificationService(newDiscardLogger(), push)

	return svc, push
}

func TestNotificationService_SendDirect_ForwardsGatewayResponse(t *testing.T) {
	svc, push := createTestNotificationService(t)

	ctx := context.Background()
	gatewayResp := map[string]any{
		"data": []any{map[string]any{"status": "ok", "id": "ticket-1"}},
	}
	push.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.To == "ExponentPushToken[abc]" &&
				msg.Title == "Hello" &&
				msg.Body == "World" &&
				msg.Sound == "default"
		})).
		Return(gatewayResp, nil)

	resp, err := svc.SendDirect(ctx, &usecase.SendPushInput{
		ExpoPushToken: "ExponentPushToken[abc]",
		Title:         "Hello",
		Body:          "World",
	})

	require.NoError(t, err)
	assert.Equal(t, gatewayResp, resp)
}

func TestNotificationService_SendDirect_GatewayFailure(t *testing.T) {
	svc, push := createTestNotificationService(t)

	ctx := context.Background()
	push.EXPECT().Send(ctx, mock.Anything).Return(nil, errors.New("gateway timeout"))

	resp, err := svc.SendDirect(ctx, &usecase.SendPushInput{
		ExpoPushToken: "ExponentPushToken[abc]",
		Title:         "Hello",
		Body:          "World",
	})

	require.Error(t, err)
	assert.Nil(t, resp)
}
