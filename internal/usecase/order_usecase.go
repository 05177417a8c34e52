package usecase

import (
	"context"

	"agriconnect/internal/domain/entity"
)

// CreateOrderInput carries a full order. Any client-sent total is
// ignored; the totals are derived server-side.
type CreateOrderInput struct {
	OrderID         string             `json:"orderId" validate:"required"`
	UserID          string             `json:"userId" validate:"required"`
	Products        []entity.OrderItem `json:"products" validate:"required,min=1"`
	DeliveryAddress any                `json:"deliveryAddress" validate:"required"`
	Distance        float64            `json:"distance"`
	StoreID         string             `json:"storeId"`
	Status          string             `json:"status"`
}

// CreateOrderSummaryInput carries the lightweight order used by the
// legacy order endpoint.
type CreateOrderSummaryInput struct {
	SellerID     string         `json:"sellerId" validate:"required"`
	OrderID      string         `json:"orderId" validate:"required"`
	OrderDetails map[string]any `json:"orderDetails"`
}

// OrderUsecase creates orders and notifies the selling side.
//
// CreateOrder persists the full order and then runs a best-effort
// seller notification chain: failures in that chain are logged and
// swallowed, never failing the order. CreateOrderSummary keeps the
// older strict contract where a missing seller or missing push token is
// an error.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)
	CreateOrderSummary(ctx context.Context, input *CreateOrderSummaryInput) error
}
