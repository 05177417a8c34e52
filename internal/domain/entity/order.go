package entity

import "time"

// OrderItem is a single line item of an order. Price and quantity come
// from the client but the totals derived from them are always
// recalculated server-side.
type OrderItem struct {
	ProductID   string  `json:"productId,omitempty"`
	ProductName string  `json:"productName,omitempty"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
}

// Order is a buyer's full order. Total, TotalWeightKg, DeliveryFee and
// GrandTotal are authoritative server-derived values; any client-sent
// total is discarded. The document key is the client-generated OrderID.
type Order struct {
	OrderID         string      `json:"orderId"`
	UserID          string      `json:"userId"`
	Products        []OrderItem `json:"products"`
	Total           float64     `json:"total"`
	DeliveryAddress any         `json:"deliveryAddress"`
	Distance        float64     `json:"distance"`
	TotalWeightKg   float64     `json:"totalWeightKg"`
	DeliveryFee     float64     `json:"deliveryFee"`
	GrandTotal      float64     `json:"grandTotal"`
	StoreID         string      `json:"storeId,omitempty"`
	OrderStatus     string      `json:"orderStatus"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// OrderSummary is the minimal order record written by the lightweight
// order endpoint. It lives in its own collection, separate from full
// orders.
type OrderSummary struct {
	OrderID      string         `json:"orderId"`
	SellerID     string         `json:"sellerId"`
	OrderDetails map[string]any `json:"orderDetails"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
}
