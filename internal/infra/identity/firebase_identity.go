// Package identity adapts Firebase Auth to the IdentityService
// interface.
package identity

import (
	"context"

	"agriconnect/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

type firebaseIdentity struct {
	client *auth.Client
}

// NewFirebaseIdentity creates an IdentityService backed by Firebase
// Auth.
func NewFirebaseIdentity(client *auth.Client) service.IdentityService {
	return &firebaseIdentity{client: client}
}

// CreateAccount registers an email/password account and returns the
// issued uid. An email collision maps to ErrEmailAlreadyExists.
func (s *firebaseIdentity) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	record, err := s.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", service.ErrEmailAlreadyExists
		}

		return "", errors.Wrap(err, "create firebase user")
	}

	return record.UID, nil
}
