// Package usecase defines the application workflows and their
// input/output DTOs. Implementations live in usecase/impl.
package usecase

import (
	"context"
)

// RegisterInput carries the signup form for any role. ValidIDBase64 is
// an optional base64-encoded verification image.
type RegisterInput struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required"`
	Password      string `json:"password" validate:"required"`
	Role          string `json:"role" validate:"required"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
	Birthday      string `json:"birthday"`
	Vehicle       string `json:"vehicle"`
	ValidIDBase64 string `json:"validIdBase64"`
	AgreedToTerms bool   `json:"agreedToTerms"`
}

// RegisterOutput is returned on successful registration. ImageURL is
// empty when no verification image was supplied.
type RegisterOutput struct {
	UID      string `json:"uid"`
	ImageURL string `json:"imageUrl"`
}

// RegistrationUsecase registers marketplace accounts, one flow per
// role. All three create the identity-provider account, store the
// optional verification image and persist the pending user document;
// they differ in image naming and in the buyer's staged pre-identity
// record.
type RegistrationUsecase interface {
	RegisterBuyer(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	RegisterSeller(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	RegisterRider(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
}
