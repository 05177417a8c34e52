package firestoredb

import (
	"testing"

	"agriconnect/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

// The document key and the embedded id field must carry the same
// value; mobile clients read the id out of the raw document.
func TestModelsEmbedDocumentID(t *testing.T) {
	orderM := toOrderModel(&entity.Order{OrderID: "order-1", UserID: "buyer-1"})
	assert.Equal(t, "order-1", orderM.OrderID)

	productM := toProductModel(&entity.Product{ProductID: "prod-1", StoreID: "store-1"})
	assert.Equal(t, "prod-1", productM.ProductID)

	storeM := toStoreModel(&entity.Store{StoreID: "store-1", StoreName: "Bohol Fresh"})
	assert.Equal(t, "store-1", storeM.StoreID)
}

func TestStoreRoundTripKeepsGeoPoint(t *testing.T) {
	store := &entity.Store{
		StoreID:  "store-1",
		GeoPoint: entity.GeoPoint{Lat: 9.6475, Lng: 123.8854},
	}

	back := toStoreDomain("store-1", toStoreModel(store))

	assert.Equal(t, store.GeoPoint, back.GeoPoint)
	assert.Equal(t, "store-1", back.StoreID)
}
