package model

import (
	"time"
)

// DeliveryAddressModel mirrors a document in the 'delivery_address'
// collection.
type DeliveryAddressModel struct {
	UserID         string    `firestore:"userId"`
	Name           string    `firestore:"name"`
	Municipality   string    `firestore:"municipality"`
	Barangay       string    `firestore:"barangay"`
	AddressDetails string    `firestore:"addressDetails,omitempty"`
	IsDefault      bool      `firestore:"isDefault"`
	Latitude       float64   `firestore:"latitude"`
	Longitude      float64   `firestore:"longitude"`
	CreatedAt      time.Time `firestore:"createdAt"`
	UpdatedAt      time.Time `firestore:"updatedAt"`
}

// RiderLocationModel mirrors a document in the 'rider_location'
// collection.
type RiderLocationModel struct {
	UserID         string    `firestore:"userId"`
	Name           string    `firestore:"name"`
	Municipality   string    `firestore:"municipality"`
	Barangay       string    `firestore:"barangay"`
	AddressDetails string    `firestore:"addressDetails,omitempty"`
	IsDefault      bool      `firestore:"isDefault"`
	Latitude       float64   `firestore:"latitude"`
	Longitude      float64   `firestore:"longitude"`
	CreatedAt      time.Time `firestore:"createdAt"`
}
