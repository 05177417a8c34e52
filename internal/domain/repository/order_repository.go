package repository

import (
	"context"

	"agriconnect/internal/domain/entity"
)

// OrderRepository persists order documents keyed by the client-supplied
// order id. Full orders and order summaries live in separate
// collections with independent key spaces.
type OrderRepository interface {
	// Save writes the full order document under its OrderID.
	Save(ctx context.Context, order *entity.Order) error

	// SaveSummary writes the minimal order record used by the
	// lightweight order endpoint.
	SaveSummary(ctx context.Context, summary *entity.OrderSummary) error
}
