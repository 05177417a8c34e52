package impl

import (
	"context"
	"log/slog"
	"time"

	"agriconnect/internal/domain/entity"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/usecase"

	"github.com/pkg/errors"
)

type addressService struct {
	logger    *slog.Logger
	addresses repository.DeliveryAddressRepository
	locations repository.RiderLocationRepository
}

// NewAddressService creates the address capture service.
func NewAddressService(
	logger *slog.Logger,
	addresses repository.DeliveryAddressRepository,
	locations repository.RiderLocationRepository,
) usecase.AddressUsecase {
	return &addressService{
		logger:    logger,
		addresses: addresses,
		locations: locations,
	}
}

func (s *addressService) CreateDeliveryAddress(ctx context.Context, input *usecase.CreateDeliveryAddressInput) (*entity.DeliveryAddress, error) {
	now := time.Now().UTC()
	address := &entity.DeliveryAddress{
		AddressID:      input.AddressID,
		UserID:         input.UserID,
		Name:           input.Name,
		Municipality:   input.Municipality,
		Barangay:       input.Barangay,
		AddressDetails: input.AddressDetails,
		IsDefault:      input.IsDefault,
		Latitude:       coord(input.Latitude),
		Longitude:      coord(input.Longitude),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.addresses.Save(ctx, address); err != nil {
		return nil, errors.Wrap(err, "save delivery address")
	}

	return address, nil
}

func (s *addressService) CreateRiderLocation(ctx context.Context, input *usecase.CreateRiderLocationInput) (*entity.RiderLocation, error) {
	location := &entity.RiderLocation{
		AddressID:      input.AddressID,
		UserID:         input.UserID,
		Name:           input.Name,
		Municipality:   input.Municipality,
		Barangay:       input.Barangay,
		AddressDetails: input.AddressDetails,
		IsDefault:      input.IsDefault,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.locations.Save(ctx, location); err != nil {
		return nil, errors.Wrap(err, "save rider location")
	}

	return location, nil
}

func coord(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}
