// Package service defines interfaces for the external collaborators:
// the identity provider, object storage, geocoding service, push
// gateway and event bus. Implementations live under internal/infra.
package service

import (
	"context"
	"errors"
)

// ErrEmailAlreadyExists is returned when the identity provider rejects
// an account because the email is taken. The registration workflow maps
// it to the client-facing "Email is already in use" outcome.
var ErrEmailAlreadyExists = errors.New("email already exists")

// IdentityService creates accounts at the external identity provider.
// The provider issues the uid that keys the permanent user document.
type IdentityService interface {
	// CreateAccount registers an email/password account and returns the
	// issued uid. Returns ErrEmailAlreadyExists on email collision.
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
}
