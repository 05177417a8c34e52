package firestoredb

import (
	"context"

	"agriconnect/internal/domain/entity"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// deliveryAddressRepository implements
// repository.DeliveryAddressRepository on the document store.
type deliveryAddressRepository struct {
	client *firestore.Client
}

// NewDeliveryAddressRepository is the constructor for
// deliveryAddressRepository.
func NewDeliveryAddressRepository(client *firestore.Client) repository.DeliveryAddressRepository {
	return &deliveryAddressRepository{client: client}
}

// Save writes the address document under its AddressID.
func (repo *deliveryAddressRepository) Save(ctx context.Context, address *entity.DeliveryAddress) error {
	addressM := &model.DeliveryAddressModel{
		UserID:         address.UserID,
		Name:           address.Name,
		Municipality:   address.Municipality,
		Barangay:       address.Barangay,
		AddressDetails: address.AddressDetails,
		IsDefault:      address.IsDefault,
		Latitude:       address.Latitude,
		Longitude:      address.Longitude,
		CreatedAt:      address.CreatedAt,
		UpdatedAt:      address.UpdatedAt,
	}

	_, err := repo.client.Collection(deliveryAddressesCollection).Doc(address.AddressID).Set(ctx, addressM)
	if err != nil {
		return errors.Wrap(err, "failed to save delivery address")
	}

	return nil
}

// riderLocationRepository implements repository.RiderLocationRepository
// on the document store.
type riderLocationRepository struct {
	client *firestore.Client
}

// NewRiderLocationRepository is the constructor for
// riderLocationRepository.
func NewRiderLocationRepository(client *firestore.Client) repository.RiderLocationRepository {
	return &riderLocationRepository{client: client}
}

// Save writes the rider location document under its AddressID.
func (repo *riderLocationRepository) Save(ctx context.Context, location *entity.RiderLocation) error {
	locationM := &model.RiderLocationModel{
		UserID:         location.UserID,
		Name:           location.Name,
		Municipality:   location.Municipality,
		Barangay:       location.Barangay,
		AddressDetails: location.AddressDetails,
		IsDefault:      location.IsDefault,
		Latitude:       location.Latitude,
		Longitude:      location.Longitude,
		CreatedAt:      location.CreatedAt,
	}

	_, err := repo.client.Collection(riderLocationsCollection).Doc(location.AddressID).Set(ctx, locationM)
	if err != nil {
		return errors.Wrap(err, "failed to save rider location")
	}

	return nil
}
