package usecase

import (
	"context"

	"agriconnect/internal/domain/entity"
)

// CreateProductInput carries a new product. Categories and images must
// be non-empty; variants, when present, are validated per variant.
type CreateProductInput struct {
	ProductID          string           `json:"productId" validate:"required"`
	StoreID            string           `json:"storeId" validate:"required"`
	BrandName          string           `json:"brandName" validate:"required"`
	OwnerID            string           `json:"ownerId" validate:"required"`
	OwnerName          string           `json:"ownerName" validate:"required"`
	ProductName        string           `json:"productName" validate:"required"`
	Categories         []string         `json:"categories" validate:"required,min=1"`
	ProductDescription string           `json:"productDescription"`
	ProductImages      []string         `json:"productImages" validate:"required,min=1"`
	Unit               string           `json:"unit"`
	Variants           []entity.Variant `json:"variants"`
}

// UpdateProductInput is a partial update: nil means "keep the existing
// value". Supplied variants are validated with the same rules as
// creation.
type UpdateProductInput struct {
	StoreID            *string           `json:"storeId,omitempty"`
	StoreName          *string           `json:"storeName,omitempty"`
	OwnerID            *string           `json:"ownerId,omitempty"`
	OwnerName          *string           `json:"ownerName,omitempty"`
	BrandName          *string           `json:"brandName,omitempty"`
	ProductName        *string           `json:"productName,omitempty"`
	Unit               *string           `json:"unit,omitempty"`
	Categories         *[]string         `json:"categories,omitempty"`
	ProductDescription *string           `json:"productDescription,omitempty"`
	ProductImages      *[]string         `json:"productImages,omitempty"`
	Variants           *[]entity.Variant `json:"variants,omitempty"`
}

// ProductUsecase creates and updates products.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, productID string, input *UpdateProductInput) (*entity.Product, error)
}
