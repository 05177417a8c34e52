// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Role identifies which side of the marketplace an account belongs to.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleRider  Role = "rider"
)

// StatusPending is the status every account and order starts in.
// Status transitions are performed by an external review process, never
// by this service.
const StatusPending = "pending"

// User is the core identity record. The UID is issued by the identity
// provider at registration; everything else is captured from the signup
// form. Identity fields are immutable once created.
type User struct {
	UID           string    `json:"uid"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Role          Role      `json:"role"`
	Status        string    `json:"status"`
	Address       string    `json:"address,omitempty"`
	ContactNumber string    `json:"contactNumber,omitempty"`
	Birthday      string    `json:"birthday,omitempty"`
	Vehicle       string    `json:"vehicle,omitempty"` // riders only
	ValidIDURL    string    `json:"validIdUrl"`
	AgreedToTerms bool      `json:"agreedToTerms"`
	ExpoPushToken string    `json:"expoPushToken,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DisplayName is the name registered with the identity provider.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
