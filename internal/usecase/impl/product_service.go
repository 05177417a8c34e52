package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"agriconnect/internal/domain/entity"
	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/usecase"

	"github.com/pkg/errors"
)

type productService struct {
	logger   *slog.Logger
	products repository.ProductRepository
}

// NewProductService creates the product workflow service.
func NewProductService(
	logger *slog.Logger,
	products repository.ProductRepository,
) usecase.ProductUsecase {
	return &productService{
		logger:   logger,
		products: products,
	}
}

// CreateProduct validates the variants and persists the product with
// status "active". The unit of measure defaults to kilograms.
func (s *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := validateVariants(input.Variants); err != nil {
		return nil, err
	}

	unit := input.Unit
	if unit == "" {
		unit = entity.DefaultUnit
	}
	variants := input.Variants
	if variants == nil {
		variants = []entity.Variant{}
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ProductID:          input.ProductID,
		StoreID:            input.StoreID,
		BrandName:          input.BrandName,
		OwnerID:            input.OwnerID,
		OwnerName:          input.OwnerName,
		ProductName:        input.ProductName,
		Categories:         input.Categories,
		ProductDescription: input.ProductDescription,
		ProductImages:      input.ProductImages,
		Unit:               unit,
		Variants:           variants,
		Status:             entity.ProductStatusActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, errors.Wrap(err, "save product")
	}

	return product, nil
}

// UpdateProduct applies a partial update. Supplied variants are
// re-validated; an empty update body still refreshes UpdatedAt.
func (s *productService) UpdateProduct(ctx context.Context, productID string, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "load product")
	}

	if input.Variants != nil {
		if err := validateVariants(*input.Variants); err != nil {
			return nil, err
		}
		product.Variants = *input.Variants
	}
	if input.Categories != nil {
		product.Categories = *input.Categories
	}
	if input.ProductImages != nil {
		product.ProductImages = *input.ProductImages
	}
	applyString(&product.StoreID, input.StoreID)
	applyString(&product.StoreName, input.StoreName)
	applyString(&product.OwnerID, input.OwnerID)
	applyString(&product.OwnerName, input.OwnerName)
	applyString(&product.BrandName, input.BrandName)
	applyString(&product.ProductName, input.ProductName)
	applyString(&product.Unit, input.Unit)
	applyString(&product.ProductDescription, input.ProductDescription)

	product.UpdatedAt = time.Now().UTC()
	if err := s.products.Save(ctx, product); err != nil {
		return nil, errors.Wrap(err, "save product")
	}

	return product, nil
}

func validateVariants(variants []entity.Variant) error {
	for i, v := range variants {
		if v.Name == "" {
			return domainerrors.ErrInvalidVariant.WithDetails(
				fmt.Sprintf("variant at index %d has no name", i),
			)
		}
		if v.Stock < 0 {
			return domainerrors.ErrInvalidVariant.WithDetails(
				fmt.Sprintf("variant %q stock must be a non-negative number", v.Name),
			)
		}
		if v.Price <= 0 {
			return domainerrors.ErrInvalidVariant.WithDetails(
				fmt.Sprintf("variant %q price must be a positive number", v.Name),
			)
		}
	}

	return nil
}
