package repository

import (
	"context"
	"errors"

	"agriconnect/internal/domain/entity"
)

// ErrStoreNotFound is returned when a store document does not exist.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository persists store documents keyed by the client-supplied
// store id.
type StoreRepository interface {
	// Save writes the store document under its StoreID, overwriting any
	// existing document with the same key.
	Save(ctx context.Context, store *entity.Store) error

	// FindByID retrieves a store by id. Returns ErrStoreNotFound if the
	// document does not exist.
	FindByID(ctx context.Context, storeID string) (*entity.Store, error)
}
