package usecase

import (
	"context"

	"agriconnect/internal/domain/entity"
)

// CreateDeliveryAddressInput carries a buyer's drop-off point including
// coordinates resolved by the client. The coordinates are pointers so
// that 0 is a present value and only an absent field fails validation.
type CreateDeliveryAddressInput struct {
	AddressID      string   `json:"addressId" validate:"required"`
	UserID         string   `json:"userId" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Municipality   string   `json:"municipality" validate:"required"`
	Barangay       string   `json:"barangay" validate:"required"`
	AddressDetails string   `json:"addressDetails"`
	IsDefault      bool     `json:"isDefault"`
	Latitude       *float64 `json:"latitude" validate:"required"`
	Longitude      *float64 `json:"longitude" validate:"required"`
}

// CreateRiderLocationInput mirrors the delivery address shape for the
// rider app's location capture.
type CreateRiderLocationInput struct {
	AddressID      string  `json:"addressId"`
	UserID         string  `json:"userId" validate:"required"`
	Name           string  `json:"name"`
	Municipality   string  `json:"municipality" validate:"required"`
	Barangay       string  `json:"barangay" validate:"required"`
	AddressDetails string  `json:"addressDetails"`
	IsDefault      bool    `json:"isDefault"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

// AddressUsecase captures delivery addresses and rider locations into
// their separate collections.
type AddressUsecase interface {
	CreateDeliveryAddress(ctx context.Context, input *CreateDeliveryAddressInput) (*entity.DeliveryAddress, error)
	CreateRiderLocation(ctx context.Context, input *CreateRiderLocationInput) (*entity.RiderLocation, error)
}
