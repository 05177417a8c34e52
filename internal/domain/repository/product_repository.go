package repository

import (
	"context"
	"errors"

	"agriconnect/internal/domain/entity"
)

// ErrProductNotFound is returned when a product document does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists product documents keyed by the
// client-supplied product id.
type ProductRepository interface {
	// Save writes the product document under its ProductID, overwriting
	// any existing document with the same key.
	Save(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by id. Returns ErrProductNotFound if
	// the document does not exist.
	FindByID(ctx context.Context, productID string) (*entity.Product, error)
}
