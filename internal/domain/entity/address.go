package entity

import "time"

// DeliveryAddress is a buyer's saved drop-off point. The document key
// is the client-generated AddressID; writing an existing ID overwrites
// the prior document.
type DeliveryAddress struct {
	AddressID      string    `json:"addressId"`
	UserID         string    `json:"userId"`
	Name           string    `json:"name"`
	Municipality   string    `json:"municipality"`
	Barangay       string    `json:"barangay"`
	AddressDetails string    `json:"addressDetails"`
	IsDefault      bool      `json:"isDefault"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// RiderLocation mirrors DeliveryAddress structurally but is written to
// its own collection and captured from the rider app.
type RiderLocation struct {
	AddressID      string    `json:"addressId"`
	UserID         string    `json:"userId"`
	Name           string    `json:"name"`
	Municipality   string    `json:"municipality"`
	Barangay       string    `json:"barangay"`
	AddressDetails string    `json:"addressDetails"`
	IsDefault      bool      `json:"isDefault"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	CreatedAt      time.Time `json:"createdAt"`
}
