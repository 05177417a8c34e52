package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"agriconnect/internal/domain/entity"
	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/domain/pricing"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/domain/service"
	"agriconnect/internal/usecase"

	"github.com/pkg/errors"
)

type orderService struct {
	logger *slog.Logger
	orders repository.OrderRepository
	stores repository.StoreRepository
	users  repository.UserRepository
	push   service.PushService
	events service.EventPublisher
}

// NewOrderService creates the order workflow service. events may be a
// no-op publisher when eventing is disabled.
func NewOrderService(
	logger *slog.Logger,
	orders repository.OrderRepository,
	stores repository.StoreRepository,
	users repository.UserRepository,
	push service.PushService,
	events service.EventPublisher,
) usecase.OrderUsecase {
	return &orderService{
		logger: logger,
		orders: orders,
		stores: stores,
		users:  users,
		push:   push,
		events: events,
	}
}

// CreateOrder derives the order totals, persists the order and then
// notifies the store owner. The notification chain and the order event
// are best-effort: the order stands once it is stored.
func (s *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	quote := pricing.Calculate(input.Products, input.Distance)

	status := input.Status
	if status == "" {
		status = entity.StatusPending
	}

	now := time.Now().UTC()
	order := &entity.Order{
		OrderID:         input.OrderID,
		UserID:          input.UserID,
		Products:        input.Products,
		Total:           quote.Subtotal,
		DeliveryAddress: input.DeliveryAddress,
		Distance:        input.Distance,
		TotalWeightKg:   quote.TotalWeightKg,
		DeliveryFee:     quote.DeliveryFee,
		GrandTotal:      quote.GrandTotal,
		StoreID:         input.StoreID,
		OrderStatus:     entity.StatusPending,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, errors.Wrap(err, "save order")
	}

	if order.StoreID != "" {
		s.notifyStoreOwner(ctx, order)
	}
	s.publishOrderEvent(ctx, order)

	return order, nil
}

// CreateOrderSummary persists the lightweight order record and pushes a
// notification to the seller. Unlike CreateOrder, a seller without a
// usable push token is a caller-visible error.
func (s *orderService) CreateOrderSummary(ctx context.Context, input *usecase.CreateOrderSummaryInput) error {
	details := input.OrderDetails
	if details == nil {
		details = map[string]any{}
	}

	summary := &entity.OrderSummary{
		OrderID:      input.OrderID,
		SellerID:     input.SellerID,
		OrderDetails: details,
		Status:       entity.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.orders.SaveSummary(ctx, summary); err != nil {
		return errors.Wrap(err, "save order summary")
	}

	seller, err := s.users.FindByID(ctx, input.SellerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrSellerNotFound
		}

		return errors.Wrap(err, "load seller")
	}
	if seller.ExpoPushToken == "" {
		return domainerrors.ErrSellerNoPushToken
	}

	_, err = s.push.Send(ctx, service.PushMessage{
		To:    seller.ExpoPushToken,
		Sound: "default",
		Title: "New Order Received!",
		Body:  fmt.Sprintf("You have a new order: %s", input.OrderID),
		Data:  map[string]string{"orderId": input.OrderID},
	})
	if err != nil {
		return errors.Wrap(err, "send order notification")
	}

	return nil
}

// notifyStoreOwner walks store -> owner -> push token. Every missing
// link or transport failure is logged and swallowed.
func (s *orderService) notifyStoreOwner(ctx context.Context, order *entity.Order) {
	store, err := s.stores.FindByID(ctx, order.StoreID)
	if err != nil {
		s.logger.Warn("order notification: store lookup failed",
			slog.String("orderId", order.OrderID),
			slog.String("storeId", order.StoreID),
			slog.Any("error", err),
		)

		return
	}
	if store.OwnerID == "" {
		s.logger.Warn("order notification: store has no owner",
			slog.String("storeId", order.StoreID),
		)

		return
	}

	owner, err := s.users.FindByID(ctx, store.OwnerID)
	if err != nil {
		s.logger.Warn("order notification: owner lookup failed",
			slog.String("ownerId", store.OwnerID),
			slog.Any("error", err),
		)

		return
	}
	if owner.ExpoPushToken == "" {
		s.logger.Warn("order notification: owner has no push token",
			slog.String("ownerId", store.OwnerID),
		)

		return
	}
	if !service.IsExpoPushToken(owner.ExpoPushToken) {
		s.logger.Warn("order notification: owner push token is not an Expo token",
			slog.String("ownerId", store.OwnerID),
		)

		return
	}

	tickets, err := s.push.SendBatch(ctx, []service.PushMessage{{
		To:    owner.ExpoPushToken,
		Sound: "default",
		Title: "New Order Received!",
		Body:  fmt.Sprintf("A new order was placed at %s.", store.StoreName),
		Data:  map[string]string{"orderId": order.OrderID},
	}})
	if err != nil {
		s.logger.Warn("order notification: push delivery failed",
			slog.String("orderId", order.OrderID),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info("store owner notified of new order",
		slog.String("orderId", order.OrderID),
		slog.String("ownerId", store.OwnerID),
		slog.Int("tickets", len(tickets)),
	)
}

func (s *orderService) publishOrderEvent(ctx context.Context, order *entity.Order) {
	if s.events == nil {
		return
	}

	event := &service.OrderEvent{
		OrderID:    order.OrderID,
		UserID:     order.UserID,
		StoreID:    order.StoreID,
		GrandTotal: order.GrandTotal,
		ItemCount:  len(order.Products),
	}
	if err := s.events.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warn("order event publish failed",
			slog.String("orderId", order.OrderID),
			slog.Any("error", err),
		)
	}
}
