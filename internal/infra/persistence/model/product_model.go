package model

import (
	"time"
)

// VariantModel is a purchasable sub-option embedded in a product
// document.
type VariantModel struct {
	Name  string  `firestore:"name"`
	Stock float64 `firestore:"stock"`
	Price float64 `firestore:"price"`
}

// ProductModel mirrors a document in the 'products' collection. The
// product id doubles as the document key and is embedded as well.
type ProductModel struct {
	ProductID          string         `firestore:"productId"`
	StoreID            string         `firestore:"storeId"`
	StoreName          string         `firestore:"storeName,omitempty"`
	BrandName          string         `firestore:"brandName,omitempty"`
	OwnerID            string         `firestore:"ownerId"`
	OwnerName          string         `firestore:"ownerName,omitempty"`
	ProductName        string         `firestore:"productName"`
	Categories         []string       `firestore:"categories"`
	ProductDescription string         `firestore:"productDescription,omitempty"`
	ProductImages      []string       `firestore:"productImages"`
	Unit               string         `firestore:"unit"`
	Variants           []VariantModel `firestore:"variants"`
	Status             string         `firestore:"status"`
	CreatedAt          time.Time      `firestore:"createdAt"`
	UpdatedAt          time.Time      `firestore:"updatedAt"`
}
