package impl

import (
	"context"
	"testing"
	"time"

	"agriconnect/internal/domain/entity"
	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/domain/service"
	mockRepo "agriconnect/internal/mocks/repository"
	mockSvc "agriconnect/internal/mocks/service"
	"agriconnect/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestStoreService(t *testing.T) (
	usecase.StoreUsecase,
	*mockRepo.MockStoreRepository,
	*mockSvc.MockGeocoder,
) {
	stores := mockRepo.NewMockStoreRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)

	svc := NewStoreService(newDiscardLogger(), stores, geocoder)

	return svc, stores, geocoder
}

func strPtr(s string) *string { return &s }

func TestStoreService_CreateStore_Success(t *testing.T) {
	svc, stores, geocoder := createTestStoreService(t)

	ctx := context.Background()
	geocoder.EXPECT().
		Geocode(ctx, "Tagbilaran City, Bohol").
		Return(orb.Point{123.8854, 9.6475}, nil)

	var saved *entity.Store
	stores.EXPECT().
		Save(ctx, mock.Anything).
		Run(func(_ context.Context, store *entity.Store) {
			saved = store
		}).
		Return(nil)

	store, err := svc.CreateStore(ctx, &usecase.CreateStoreInput{
		StoreID:       "store-1",
		StoreName:     "Fresh Farm",
		StoreLocation: "Tagbilaran City, Bohol",
		OwnerID:       "seller-1",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 9.6475, store.GeoPoint.Lat)
	assert.Equal(t, 123.8854, store.GeoPoint.Lng)
	assert.False(t, store.CreatedAt.IsZero())
	assert.Equal(t, store.CreatedAt, store.UpdatedAt)
}

func TestStoreService_CreateStore_UnresolvableLocation(t *testing.T) {
	svc, _, geocoder := createTestStoreService(t)

	ctx := context.Background()
	geocoder.EXPECT().
		Geocode(ctx, "nowhere at all").
		Return(orb.Point{}, service.ErrLocationNotResolvable)

	store, err := svc.CreateStore(ctx, &usecase.CreateStoreInput{
		StoreID:       "store-1",
		StoreLocation: "nowhere at all",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidLocation)
	assert.Nil(t, store)
}

func TestStoreService_UpdateStore_PartialUpdate(t *testing.T) {
	svc, stores, _ := createTestStoreService(t)

	ctx := context.Background()
	existing := &entity.Store{
		StoreID:       "store-1",
		StoreName:     "Old Name",
		Description:   "old description",
		StoreLocation: "Tagbilaran City, Bohol",
		GeoPoint:      entity.GeoPoint{Lat: 9.6475, Lng: 123.8854},
		UpdatedAt:     time.Now().UTC().Add(-time.Hour),
	}
	stores.EXPECT().FindByID(ctx, "store-1").Return(existing, nil)

	var saved *entity.Store
	stores.EXPECT().
		Save(ctx, mock.Anything).
		Run(func(_ context.Context, store *entity.Store) {
			saved = store
		}).
		Return(nil)

	updated, err := svc.UpdateStore(ctx, "store-1", &usecase.UpdateStoreInput{
		StoreName: strPtr("New Name"),
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "New Name", updated.StoreName)
	assert.Equal(t, "old description", updated.Description)
	assert.Equal(t, 9.6475, updated.GeoPoint.Lat)
	assert.True(t, updated.UpdatedAt.After(existing.CreatedAt))
}

func TestStoreService_UpdateStore_GeocodeFailureKeepsCoordinates(t *testing.T) {
	svc, stores, geocoder := createTestStoreService(t)

	ctx := context.Background()
	stores.EXPECT().FindByID(ctx, "store-1").Return(&entity.Store{
		StoreID:       "store-1",
		StoreLocation: "Tagbilaran City, Bohol",
		GeoPoint:      entity.GeoPoint{Lat: 9.6475, Lng: 123.8854},
	}, nil)
	geocoder.EXPECT().
		Geocode(ctx, "unmappable place").
		Return(orb.Point{}, service.ErrLocationNotResolvable)
	stores.EXPECT().Save(ctx, mock.Anything).Return(nil)

	updated, err := svc.UpdateStore(ctx, "store-1", &usecase.UpdateStoreInput{
		StoreLocation: strPtr("unmappable place"),
	})

	require.NoError(t, err)
	assert.Equal(t, "unmappable place", updated.StoreLocation)
	assert.Equal(t, 9.6475, updated.GeoPoint.Lat)
	assert.Equal(t, 123.8854, updated.GeoPoint.Lng)
}

func TestStoreService_UpdateStore_NewLocationRegeocodes(t *testing.T) {
	svc, stores, geocoder := createTestStoreService(t)

	ctx := context.Background()
	stores.EXPECT().FindByID(ctx, "store-1").Return(&entity.Store{
		StoreID:       "store-1",
		StoreLocation: "Tagbilaran City, Bohol",
		GeoPoint:      entity.GeoPoint{Lat: 9.6475, Lng: 123.8854},
	}, nil)
	geocoder.EXPECT().
		Geocode(ctx, "Cebu City").
		Return(orb.Point{123.8907, 10.3157}, nil)
	stores.EXPECT().Save(ctx, mock.Anything).Return(nil)

	updated, err := svc.UpdateStore(ctx, "store-1", &usecase.UpdateStoreInput{
		StoreLocation: strPtr("Cebu City"),
	})

	require.NoError(t, err)
	assert.Equal(t, 10.3157, updated.GeoPoint.Lat)
	assert.Equal(t, 123.8907, updated.GeoPoint.Lng)
}

func TestStoreService_UpdateStore_NotFound(t *testing.T) {
	svc, stores, _ := createTestStoreService(t)

	ctx := context.Background()
	stores.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrStoreNotFound)

	updated, err := svc.UpdateStore(ctx, "ghost", &usecase.UpdateStoreInput{})

	require.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
	assert.Nil(t, updated)
}
