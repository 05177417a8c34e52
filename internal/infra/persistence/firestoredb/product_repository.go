package firestoredb

import (
	"context"

	"agriconnect/internal/domain/entity"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// productRepository implements repository.ProductRepository on the
// document store.
type productRepository struct {
	client *firestore.Client
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

// Save writes the product document under its ProductID.
func (repo *productRepository) Save(ctx context.Context, product *entity.Product) error {
	_, err := repo.client.Collection(productsCollection).Doc(product.ProductID).Set(ctx, toProductModel(product))
	if err != nil {
		return errors.Wrap(err, "failed to save product")
	}

	return nil
}

// FindByID retrieves a product by id.
func (repo *productRepository) FindByID(ctx context.Context, productID string) (*entity.Product, error) {
	snap, err := repo.client.Collection(productsCollection).Doc(productID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	var productM model.ProductModel
	if err := snap.DataTo(&productM); err != nil {
		return nil, errors.Wrap(err, "failed to decode product document")
	}

	return toProductDomain(productID, &productM), nil
}

func toProductModel(product *entity.Product) *model.ProductModel {
	variants := make([]model.VariantModel, 0, len(product.Variants))
	for _, v := range product.Variants {
		variants = append(variants, model.VariantModel(v))
	}

	return &model.ProductModel{
		ProductID:          product.ProductID,
		StoreID:            product.StoreID,
		StoreName:          product.StoreName,
		BrandName:          product.BrandName,
		OwnerID:            product.OwnerID,
		OwnerName:          product.OwnerName,
		ProductName:        product.ProductName,
		Categories:         product.Categories,
		ProductDescription: product.ProductDescription,
		ProductImages:      product.ProductImages,
		Unit:               product.Unit,
		Variants:           variants,
		Status:             product.Status,
		CreatedAt:          product.CreatedAt,
		UpdatedAt:          product.UpdatedAt,
	}
}

func toProductDomain(productID string, productM *model.ProductModel) *entity.Product {
	variants := make([]entity.Variant, 0, len(productM.Variants))
	for _, v := range productM.Variants {
		variants = append(variants, entity.Variant(v))
	}

	return &entity.Product{
		ProductID:          productID,
		StoreID:            productM.StoreID,
		StoreName:          productM.StoreName,
		BrandName:          productM.BrandName,
		OwnerID:            productM.OwnerID,
		OwnerName:          productM.OwnerName,
		ProductName:        productM.ProductName,
		Categories:         productM.Categories,
		ProductDescription: productM.ProductDescription,
		ProductImages:      productM.ProductImages,
		Unit:               productM.Unit,
		Variants:           variants,
		Status:             productM.Status,
		CreatedAt:          productM.CreatedAt,
		UpdatedAt:          productM.UpdatedAt,
	}
}
