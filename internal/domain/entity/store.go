package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// GeoPoint is a resolved (latitude, longitude) pair. It is derived from
// the free-text store location through the geocoding adapter and never
// supplied directly by the caller.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeoPointFromOrb converts an orb.Point (lon/lat order) to a GeoPoint.
func GeoPointFromOrb(pt orb.Point) GeoPoint {
	return GeoPoint{Lat: pt.Lat(), Lng: pt.Lon()}
}

// Orb returns the point in orb's lon/lat order.
func (g GeoPoint) Orb() orb.Point {
	return orb.Point{g.Lng, g.Lat}
}

// Store is a seller's storefront. The document key is the
// client-generated StoreID; GeoPoint is resolved server-side from
// StoreLocation and only re-resolved when the location text changes.
type Store struct {
	StoreID         string    `json:"storeId"`
	BrandName       string    `json:"brandName"`
	StoreName       string    `json:"storeName"`
	BranchName      string    `json:"branchName"`
	StoreLocation   string    `json:"storeLocation"`
	GeoPoint        GeoPoint  `json:"geoPoint"`
	Description     string    `json:"description"`
	StoreHours      string    `json:"storeHours"`
	ContactDetails  string    `json:"contactDetails"`
	StoreLogo       string    `json:"storeLogo"`
	StoreBackground string    `json:"storeBackground"`
	OwnerID         string    `json:"ownerId"`
	OwnerName       string    `json:"ownerName"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
