package model

import (
	"time"
)

// OrderItemModel is a line item embedded in an order document.
type OrderItemModel struct {
	ProductID   string  `firestore:"productId,omitempty"`
	ProductName string  `firestore:"productName,omitempty"`
	Price       float64 `firestore:"price"`
	Quantity    float64 `firestore:"quantity"`
	Unit        string  `firestore:"unit"`
}

// OrderModel mirrors a document in the full-order collection. The
// order id doubles as the document key; clients reading raw documents
// expect it embedded as well. The delivery address is stored as the
// client sent it.
type OrderModel struct {
	OrderID         string           `firestore:"orderId"`
	UserID          string           `firestore:"userId"`
	Products        []OrderItemModel `firestore:"products"`
	Total           float64          `firestore:"total"`
	DeliveryAddress any              `firestore:"deliveryAddress"`
	Distance        float64          `firestore:"distance"`
	TotalWeightKg   float64          `firestore:"totalWeightKg"`
	DeliveryFee     float64          `firestore:"deliveryFee"`
	GrandTotal      float64          `firestore:"grandTotal"`
	StoreID         string           `firestore:"storeId,omitempty"`
	OrderStatus     string           `firestore:"orderStatus"`
	Status          string           `firestore:"status"`
	CreatedAt       time.Time        `firestore:"createdAt"`
	UpdatedAt       time.Time        `firestore:"updatedAt"`
}

// OrderSummaryModel mirrors a document in the lightweight order
// collection.
type OrderSummaryModel struct {
	OrderID      string         `firestore:"orderId"`
	SellerID     string         `firestore:"sellerId"`
	OrderDetails map[string]any `firestore:"orderDetails"`
	Status       string         `firestore:"status"`
	CreatedAt    time.Time      `firestore:"createdAt"`
}
