package firestoredb

import (
	"context"

	"agriconnect/internal/domain/entity"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/genproto/googleapis/type/latlng"
)

// storeRepository implements repository.StoreRepository on the document
// store.
type storeRepository struct {
	client *firestore.Client
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(client *firestore.Client) repository.StoreRepository {
	return &storeRepository{client: client}
}

// Save writes the store document under its StoreID.
func (repo *storeRepository) Save(ctx context.Context, store *entity.Store) error {
	_, err := repo.client.Collection(storesCollection).Doc(store.StoreID).Set(ctx, toStoreModel(store))
	if err != nil {
		return errors.Wrap(err, "failed to save store")
	}

	return nil
}

// FindByID retrieves a store by id.
func (repo *storeRepository) FindByID(ctx context.Context, storeID string) (*entity.Store, error) {
	snap, err := repo.client.Collection(storesCollection).Doc(storeID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	var storeM model.StoreModel
	if err := snap.DataTo(&storeM); err != nil {
		return nil, errors.Wrap(err, "failed to decode store document")
	}

	return toStoreDomain(storeID, &storeM), nil
}

func toStoreModel(store *entity.Store) *model.StoreModel {
	return &model.StoreModel{
		StoreID:       store.StoreID,
		BrandName:     store.BrandName,
		StoreName:     store.StoreName,
		BranchName:    store.BranchName,
		StoreLocation: store.StoreLocation,
		GeoPoint: &latlng.LatLng{
			Latitude:  store.GeoPoint.Lat,
			Longitude: store.GeoPoint.Lng,
		},
		Description:     store.Description,
		StoreHours:      store.StoreHours,
		ContactDetails:  store.ContactDetails,
		StoreLogo:       store.StoreLogo,
		StoreBackground: store.StoreBackground,
		OwnerID:         store.OwnerID,
		OwnerName:       store.OwnerName,
		CreatedAt:       store.CreatedAt,
		UpdatedAt:       store.UpdatedAt,
	}
}

func toStoreDomain(storeID string, storeM *model.StoreModel) *entity.Store {
	store := &entity.Store{
		StoreID:         storeID,
		BrandName:       storeM.BrandName,
		StoreName:       storeM.StoreName,
		BranchName:      storeM.BranchName,
		StoreLocation:   storeM.StoreLocation,
		Description:     storeM.Description,
		StoreHours:      storeM.StoreHours,
		ContactDetails:  storeM.ContactDetails,
		StoreLogo:       storeM.StoreLogo,
		StoreBackground: storeM.StoreBackground,
		OwnerID:         storeM.OwnerID,
		OwnerName:       storeM.OwnerName,
		CreatedAt:       storeM.CreatedAt,
		UpdatedAt:       storeM.UpdatedAt,
	}
	if storeM.GeoPoint != nil {
		store.GeoPoint = entity.GeoPoint{
			Lat: storeM.GeoPoint.Latitude,
			Lng: storeM.GeoPoint.Longitude,
		}
	}

	return store
}
