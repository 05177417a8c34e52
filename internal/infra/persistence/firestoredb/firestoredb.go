// Package firestoredb contains the concrete implementation of the
// persistence layer on top of the Firestore document store. Writes are
// plain document sets keyed by client-supplied IDs; a re-sent ID
// overwrites the previous document.
package firestoredb

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names. The two order collections differ only in case: the
// capitalized one holds full orders, the lowercase one the minimal
// records written by the lightweight order endpoint.
const (
	usersCollection             = "users"
	tempUsersCollection         = "temp_users"
	storesCollection            = "stores"
	productsCollection          = "products"
	ordersCollection            = "Orders"
	orderSummariesCollection    = "orders"
	deliveryAddressesCollection = "delivery_address"
	riderLocationsCollection    = "rider_location"
)

// isNotFound reports whether the error is the store's missing-document
// error.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
