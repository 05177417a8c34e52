package impl

import (
	"context"
	"testing"

	"agriconnect/internal/domain/entity"
	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/domain/service"
	mockRepo "agriconnect/internal/mocks/repository"
	mockSvc "agriconnect/internal/mocks/service"
	"agriconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderService(t *testing.T) (
	usecase.OrderUsecase,
	*mockRepo.MockOrderRepository,
	*mockRepo.MockStoreRepository,
	*mockRepo.MockUserRepository,
	*mockSvc.MockPushService,
	*mockSvc.MockEventPublisher,
) {
	orders := mockRepo.NewMockOrderRepository(t)
	stores := mockRepo.NewMockStoreRepository(t)
	users := mockRepo.NewMockUserRepository(t)
	push := mockSvc.NewMockPushService(t)
	events := mockSvc.NewMockEventPublisher(t)

	svc := NewOrderService(newDiscardLogger(), orders, stores, users, push, events)

	return svc, orders, stores, users, push, events
}

func TestOrderService_CreateOrder_DerivesTotals(t *testing.T) {
	svc, orders, _, _, _, events := createTestOrderService(t)

	ctx := context.Background()
	var saved *entity.Order
	orders.EXPECT().
		Save(ctx, mock.Anything).
		Run(func(_ context.Context, order *entity.Order) {
			saved = order
		}).
		Return(nil)
	events.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	order, err := svc.CreateOrder(ctx, &usecase.CreateOrderInput{
		OrderID: "order-1",
		UserID:  "buyer-1",
		Products: []entity.OrderItem{
			{ProductName: "Rice", Price: 100, Quantity: 2, Unit: "kg"},
		},
		Distance: 3,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 200.0, order.Total)
	assert.Equal(t, 2.0, order.TotalWeightKg)
	assert.Equal(t, 16.0, order.DeliveryFee)
	assert.Equal(t, 216.0, order.GrandTotal)
	assert.Equal(t, entity.StatusPending, order.OrderStatus)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestOrderService_CreateOrder_NotifiesStoreOwner(t *testing.T) {
	svc, orders, stores, users, push, events := createTestOrderService(t)

	ctx := context.Background()
	orders.EXPECT().Save(ctx, mock.Anything).Return(nil)
	stores.EXPECT().FindByID(ctx, "store-1").Return(&entity.Store{
		StoreID:   "store-1",
		StoreName: "Fresh Farm",
		OwnerID:   "seller-1",
	}, nil)
	users.EXPECT().FindByID(ctx, "seller-1").Return(&entity.User{
		UID:           "seller-1",
		ExpoPushToken: "ExponentPushToken[abc123]",
	}, nil)
	push.EXPECT().
		SendBatch(ctx, mock.MatchedBy(func(msgs []service.PushMessage) bool {
			return len(msgs) == 1 && msgs[0].To == "ExponentPushToken[abc123]"
		})).
		Return([]service.PushTicket{{Status: "ok"}}, nil)
	events.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	_, err := svc.CreateOrder(ctx, &usecase.CreateOrderInput{
		OrderID:  "order-2",
		UserID:   "buyer-1",
		StoreID:  "store-1",
		Products: []entity.OrderItem{{Price: 50, Quantity: 1, Unit: "kg"}},
		Distance: 1,
	})

	require.NoError(t, err)
}

func TestOrderService_CreateOrder_NotificationFailureDoesNotFailOrder(t *testing.T) {
	svc, orders, stores, _, _, events := createTestOrderService(t)

	ctx := context.Background()
	orders.EXPECT().Save(ctx, mock.Anything).Return(nil)
	stores.EXPECT().FindByID(ctx, "store-x").Return(nil, errors.New("backend down"))
	events.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	order, err := svc.CreateOrder(ctx, &usecase.CreateOrderInput{
		OrderID:  "order-3",
		UserID:   "buyer-1",
		StoreID:  "store-x",
		Products: []entity.OrderItem{{Price: 10, Quantity: 1, Unit: "kg"}},
	})

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_CreateOrder_SkipsNonExpoToken(t *testing.T) {
	svc, orders, stores, users, _, events := createTestOrderService(t)

	ctx := context.Background()
	orders.EXPECT().Save(ctx, mock.Anything).Return(nil)
	stores.EXPECT().FindByID(ctx, "store-1").Return(&entity.Store{
		StoreID: "store-1",
		OwnerID: "seller-1",
	}, nil)
	users.EXPECT().FindByID(ctx, "seller-1").Return(&entity.User{
		UID:           "seller-1",
		ExpoPushToken: "some-fcm-token",
	}, nil)
	events.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	_, err := svc.CreateOrder(ctx, &usecase.CreateOrderInput{
		OrderID:  "order-4",
		UserID:   "buyer-1",
		StoreID:  "store-1",
		Products: []entity.OrderItem{{Price: 10, Quantity: 1, Unit: "kg"}},
	})

	require.NoError(t, err)
}

func TestOrderService_CreateOrder_EventPublishFailureIsSwallowed(t *testing.T) {
	svc, orders, _, _, _, events := createTestOrderService(t)

	ctx := context.Background()
	orders.EXPECT().Save(ctx, mock.Anything).Return(nil)
	events.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker unavailable"))

	_, err := svc.CreateOrder(ctx, &usecase.CreateOrderInput{
		OrderID:  "order-5",
		UserID:   "buyer-1",
		Products: []entity.OrderItem{{Price: 10, Quantity: 1, Unit: "kg"}},
	})

	require.NoError(t, err)
}

func TestOrderService_CreateOrderSummary_Success(t *testing.T) {
	svc, orders, _, users, push, _ := createTestOrderService(t)

	ctx := context.Background()
	var saved *entity.OrderSummary
	orders.EXPECT().
		SaveSummary(ctx, mock.Anything).
		Run(func(_ context.Context, summary *entity.OrderSummary) {
			saved = summary
		}).
		Return(nil)
	users.EXPECT().FindByID(ctx, "seller-1").Return(&entity.User{
		UID:           "seller-1",
		ExpoPushToken: "ExponentPushToken[xyz]",
	}, nil)
	push.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.To == "ExponentPushToken[xyz]" && msg.Body == "You have a new order: order-9"
		})).
		Return(map[string]any{"data": map[string]any{"status": "ok"}}, nil)

	err := svc.CreateOrderSummary(ctx, &usecase.CreateOrderSummaryInput{
		SellerID: "seller-1",
		OrderID:  "order-9",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, entity.StatusPending, saved.Status)
	assert.NotNil(t, saved.OrderDetails)
	assert.Empty(t, saved.OrderDetails)
}

func TestOrderService_CreateOrderSummary_SellerNotFound(t *testing.T) {
	svc, orders, _, users, _, _ := createTestOrderService(t)

	ctx := context.Background()
	orders.EXPECT().SaveSummary(ctx, mock.Anything).Return(nil)
	users.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	err := svc.CreateOrderSummary(ctx, &usecase.CreateOrderSummaryInput{
		SellerID: "ghost",
		OrderID:  "order-10",
	})

	require.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
}

func TestOrderService_CreateOrderSummary_SellerHasNoToken(t *testing.T) {
	svc, orders, _, users, _, _ := createTestOrderService(t)

	ctx := context.Background()
	orders.EXPECT().SaveSummary(ctx, mock.Anything).Return(nil)
	users.EXPECT().FindByID(ctx, "seller-1").Return(&entity.User{UID: "seller-1"}, nil)

	err := svc.CreateOrderSummary(ctx, &usecase.CreateOrderSummaryInput{
		SellerID: "seller-1",
		OrderID:  "order-11",
	})

	require.ErrorIs(t, err, domainerrors.ErrSellerNoPushToken)
}

func TestOrderService_CreateOrderSummary_PushFailure(t *testing.T) {
	svc, orders, _, users, push, _ := createTestOrderService(t)

	ctx := context.Background()
	orders.EXPECT().SaveSummary(ctx, mock.Anything).Return(nil)
	users.EXPECT().FindByID(ctx, "seller-1").Return(&entity.User{
		UID:           "seller-1",
		ExpoPushToken: "ExponentPushToken[xyz]",
	}, nil)
	push.EXPECT().Send(ctx, mock.Anything).Return(nil, errors.New("gateway timeout"))

	err := svc.CreateOrderSummary(ctx, &usecase.CreateOrderSummaryInput{
		SellerID: "seller-1",
		OrderID:  "order-12",
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrSellerNotFound)
}
