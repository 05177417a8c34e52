package model

import (
	"time"

	"google.golang.org/genproto/googleapis/type/latlng"
)

// StoreModel mirrors a document in the 'stores' collection. The store
// id doubles as the document key and is embedded as well; the
// geo-point is stored as a native document-store GeoPoint value.
type StoreModel struct {
	StoreID         string         `firestore:"storeId"`
	BrandName       string         `firestore:"brandName"`
	StoreName       string         `firestore:"storeName"`
	BranchName      string         `firestore:"branchName,omitempty"`
	StoreLocation   string         `firestore:"storeLocation"`
	GeoPoint        *latlng.LatLng `firestore:"geoPoint"`
	Description     string         `firestore:"description,omitempty"`
	StoreHours      string         `firestore:"storeHours,omitempty"`
	ContactDetails  string         `firestore:"contactDetails,omitempty"`
	StoreLogo       string         `firestore:"storeLogo,omitempty"`
	StoreBackground string         `firestore:"storeBackground,omitempty"`
	OwnerID         string         `firestore:"ownerId"`
	OwnerName       string         `firestore:"ownerName"`
	CreatedAt       time.Time      `firestore:"createdAt"`
	UpdatedAt       time.Time      `firestore:"updatedAt"`
}
