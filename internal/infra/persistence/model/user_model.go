// Package model contains the persistence representations of the domain
// entities, tagged for the document store.
package model

import (
	"time"
)

// UserModel mirrors a document in the 'users' collection (and its
// transient twin 'temp_users'). The document ID is the identity
// provider's uid, so it is not repeated as a field.
type UserModel struct {
	FirstName     string    `firestore:"firstName"`
	LastName      string    `firestore:"lastName"`
	Email         string    `firestore:"email"`
	Role          string    `firestore:"role"`
	Status        string    `firestore:"status"`
	Address       string    `firestore:"address,omitempty"`
	ContactNumber string    `firestore:"contactNumber,omitempty"`
	Birthday      string    `firestore:"birthday,omitempty"`
	Vehicle       string    `firestore:"vehicle,omitempty"`
	ValidIDURL    string    `firestore:"validIdUrl"`
	AgreedToTerms bool      `firestore:"agreedToTerms"`
	ExpoPushToken string    `firestore:"expoPushToken,omitempty"`
	CreatedAt     time.Time `firestore:"createdAt"`
}
