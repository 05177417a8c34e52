package service

import (
	"context"
)

// OrderEvent is emitted after an order document has been written. It is
// strictly best-effort: publish failures never surface to the order
// response.
type OrderEvent struct {
	OrderID    string  `json:"order_id"`
	UserID     string  `json:"user_id"`
	StoreID    string  `json:"store_id,omitempty"`
	GrandTotal float64 `json:"grand_total"`
	ItemCount  int     `json:"item_count"`
}

// EventPublisher defines the interface for publishing events to a
// message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order-created event for async
	// consumers
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
