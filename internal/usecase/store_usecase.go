package usecase

import (
	"context"

	"agriconnect/internal/domain/entity"
)

// CreateStoreInput carries the full storefront description. The
// location text must geocode successfully or creation fails.
type CreateStoreInput struct {
	StoreID         string `json:"storeId" validate:"required"`
	BrandName       string `json:"brandName"`
	StoreName       string `json:"storeName"`
	BranchName      string `json:"branchName"`
	StoreLocation   string `json:"storeLocation" validate:"required"`
	Description     string `json:"description"`
	StoreHours      string `json:"storeHours"`
	ContactDetails  string `json:"contactDetails"`
	StoreLogo       string `json:"storeLogo"`
	StoreBackground string `json:"storeBackground"`
	OwnerID         string `json:"ownerId"`
	OwnerName       string `json:"ownerName"`
}

// UpdateStoreInput is a partial update: nil means "keep the existing
// value". A supplied StoreLocation triggers re-geocoding, but a
// geocoding failure keeps the old geo-point instead of failing the
// update.
type UpdateStoreInput struct {
	BrandName       *string `json:"brandName,omitempty"`
	StoreName       *string `json:"storeName,omitempty"`
	BranchName      *string `json:"branchName,omitempty"`
	StoreLocation   *string `json:"storeLocation,omitempty"`
	Description     *string `json:"description,omitempty"`
	StoreHours      *string `json:"storeHours,omitempty"`
	ContactDetails  *string `json:"contactDetails,omitempty"`
	StoreLogo       *string `json:"storeLogo,omitempty"`
	StoreBackground *string `json:"storeBackground,omitempty"`
	OwnerID         *string `json:"ownerId,omitempty"`
	OwnerName       *string `json:"ownerName,omitempty"`
}

// StoreUsecase creates and updates storefronts.
type StoreUsecase interface {
	CreateStore(ctx context.Context, input *CreateStoreInput) (*entity.Store, error)
	UpdateStore(ctx context.Context, storeID string, input *UpdateStoreInput) (*entity.Store, error)
}
