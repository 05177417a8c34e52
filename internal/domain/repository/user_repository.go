// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application
// layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"agriconnect/internal/domain/entity"
)

// ErrUserNotFound is returned when a user document does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists user documents keyed by the identity
// provider's uid. Buyer registration additionally stages a transient
// pre-identity record that is deleted once the permanent document is
// written.
type UserRepository interface {
	// Save writes the user document under its UID, overwriting any
	// existing document with the same key.
	Save(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by uid. Returns ErrUserNotFound if the
	// document does not exist.
	FindByID(ctx context.Context, uid string) (*entity.User, error)

	// SaveTemp stages a pre-identity user record under a temporary key.
	SaveTemp(ctx context.Context, tempID string, user *entity.User) error

	// DeleteTemp removes a staged pre-identity record.
	DeleteTemp(ctx context.Context, tempID string) error
}
