package entity

import "time"

// ProductStatusActive is assigned at creation; later transitions are
// external to this service.
const ProductStatusActive = "active"

// DefaultUnit is used when a product is created without a unit of
// measure.
const DefaultUnit = "kg"

// Variant is a purchasable sub-option of a product with its own stock
// and price. A variant must have a non-empty name, stock >= 0 and
// price > 0.
type Variant struct {
	Name  string  `json:"name"`
	Stock float64 `json:"stock"`
	Price float64 `json:"price"`
}

// Product is a sellable item owned by a store. The document key is the
// client-generated ProductID; re-creating with the same ID overwrites
// the prior document.
type Product struct {
	ProductID          string    `json:"productId"`
	StoreID            string    `json:"storeId"`
	StoreName          string    `json:"storeName,omitempty"`
	BrandName          string    `json:"brandName"`
	OwnerID            string    `json:"ownerId"`
	OwnerName          string    `json:"ownerName"`
	ProductName        string    `json:"productName"`
	Categories         []string  `json:"categories"`
	ProductDescription string    `json:"productDescription"`
	ProductImages      []string  `json:"productImages"`
	Unit               string    `json:"unit"`
	Variants           []Variant `json:"variants"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
