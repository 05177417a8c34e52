package impl

import (
	"context"
	"log/slog"
	"time"

	"agriconnect/internal/domain/entity"
	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/domain/service"
	"agriconnect/internal/usecase"

	"github.com/pkg/errors"
)

type storeService struct {
	logger   *slog.Logger
	stores   repository.StoreRepository
	geocoder service.Geocoder
}

// NewStoreService creates the storefront workflow service.
func NewStoreService(
	logger *slog.Logger,
	stores repository.StoreRepository,
	geocoder service.Geocoder,
) usecase.StoreUsecase {
	return &storeService{
		logger:   logger,
		stores:   stores,
		geocoder: geocoder,
	}
}

// CreateStore resolves the store location to coordinates and persists
// the storefront. An unresolvable location fails the request before
// anything is written.
func (s *storeService) CreateStore(ctx context.Context, input *usecase.CreateStoreInput) (*entity.Store, error) {
	pt, err := s.geocoder.Geocode(ctx, input.StoreLocation)
	if err != nil {
		if errors.Is(err, service.ErrLocationNotResolvable) {
			return nil, domainerrors.ErrInvalidLocation
		}

		return nil, errors.Wrap(err, "geocode store location")
	}

	now := time.Now().UTC()
	store := &entity.Store{
		StoreID:         input.StoreID,
		BrandName:       input.BrandName,
		StoreName:       input.StoreName,
		BranchName:      input.BranchName,
		StoreLocation:   input.StoreLocation,
		GeoPoint:        entity.GeoPointFromOrb(pt),
		Description:     input.Description,
		StoreHours:      input.StoreHours,
		ContactDetails:  input.ContactDetails,
		StoreLogo:       input.StoreLogo,
		StoreBackground: input.StoreBackground,
		OwnerID:         input.OwnerID,
		OwnerName:       input.OwnerName,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.stores.Save(ctx, store); err != nil {
		return nil, errors.Wrap(err, "save store")
	}

	return store, nil
}

// UpdateStore applies a partial update. A changed location is
// re-geocoded, but when re-geocoding fails the previous coordinates are
// kept and the update still goes through.
func (s *storeService) UpdateStore(ctx context.Context, storeID string, input *usecase.UpdateStoreInput) (*entity.Store, error) {
	store, err := s.stores.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "load store")
	}

	if input.StoreLocation != nil && *input.StoreLocation != "" && *input.StoreLocation != store.StoreLocation {
		pt, err := s.geocoder.Geocode(ctx, *input.StoreLocation)
		if err != nil {
			s.logger.Warn("store update: geocoding failed, keeping previous coordinates",
				slog.String("storeId", storeID),
				slog.Any("error", err),
			)
		} else {
			store.GeoPoint = entity.GeoPointFromOrb(pt)
		}
		store.StoreLocation = *input.StoreLocation
	}

	applyString(&store.BrandName, input.BrandName)
	applyString(&store.StoreName, input.StoreName)
	applyString(&store.BranchName, input.BranchName)
	applyString(&store.Description, input.Description)
	applyString(&store.StoreHours, input.StoreHours)
	applyString(&store.ContactDetails, input.ContactDetails)
	applyString(&store.StoreLogo, input.StoreLogo)
	applyString(&store.StoreBackground, input.StoreBackground)
	applyString(&store.OwnerID, input.OwnerID)
	applyString(&store.OwnerName, input.OwnerName)

	store.UpdatedAt = time.Now().UTC()
	if err := s.stores.Save(ctx, store); err != nil {
		return nil, errors.Wrap(err, "save store")
	}

	return store, nil
}

// applyString copies a supplied pointer field onto its target. nil
// means the caller did not send the field.
func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
