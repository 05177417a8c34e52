package repository

import (
	"context"

	"agriconnect/internal/domain/entity"
)

// DeliveryAddressRepository persists buyer delivery addresses keyed by
// the client-supplied address id. Writes are plain overwrites; there is
// no uniqueness check beyond the document key.
type DeliveryAddressRepository interface {
	Save(ctx context.Context, address *entity.DeliveryAddress) error
}

// RiderLocationRepository persists rider locations. Structurally the
// records mirror delivery addresses but they live in a distinct
// collection.
type RiderLocationRepository interface {
	Save(ctx context.Context, location *entity.RiderLocation) error
}
