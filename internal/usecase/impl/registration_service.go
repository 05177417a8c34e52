// Package impl contains the concrete application services behind the
// usecase interfaces.
package impl

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"agriconnect/internal/domain/entity"
	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/domain/service"
	"agriconnect/internal/usecase"

	"github.com/pkg/errors"
)

const validIDContentType = "image/jpeg"

type registrationService struct {
	logger   *slog.Logger
	users    repository.UserRepository
	identity service.IdentityService
	media    service.MediaStorage
}

// NewRegistrationService creates the registration workflow service.
func NewRegistrationService(
	logger *slog.Logger,
	users repository.UserRepository,
	identity service.IdentityService,
	media service.MediaStorage,
) usecase.RegistrationUsecase {
	return &registrationService{
		logger:   logger,
		users:    users,
		identity: identity,
		media:    media,
	}
}

// RegisterBuyer runs the buyer flow. The verification image has to be
// stored before the identity exists, so it is written under a temp
// name, and a staged pre-identity record is kept in a transient
// collection until the permanent document lands. If the process dies
// between the two writes, a stale temp record can linger; nothing reads
// that collection, so it is inert.
func (s *registrationService) RegisterBuyer(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	imageURL := ""
	if input.ValidIDBase64 != "" {
		key := fmt.Sprintf("valid_ids/temp_%s_validID.jpg", sanitizeEmail(input.Email))
		url, err := s.storeValidID(ctx, key, input.ValidIDBase64)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	user := newPendingUser(input, imageURL)

	tempID := fmt.Sprintf("temp_%d", time.Now().UnixMilli())
	if err := s.users.SaveTemp(ctx, tempID, user); err != nil {
		return nil, errors.Wrap(err, "stage pre-identity user record")
	}

	uid, err := s.createAccount(ctx, input, user)
	if err != nil {
		return nil, err
	}

	user.UID = uid
	if err := s.users.Save(ctx, user); err != nil {
		return nil, errors.Wrap(err, "save user document")
	}

	if err := s.users.DeleteTemp(ctx, tempID); err != nil {
		return nil, errors.Wrap(err, "delete staged registration record")
	}

	s.logger.Info("buyer registered", slog.String("uid", uid))

	return &usecase.RegisterOutput{UID: uid, ImageURL: imageURL}, nil
}

// RegisterSeller runs the seller flow: the identity is created first,
// so the verification image can be named after the issued uid.
func (s *registrationService) RegisterSeller(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return s.registerIdentityFirst(ctx, input)
}

// RegisterRider runs the rider flow, identical to the seller flow plus
// the vehicle descriptor carried on the user document.
func (s *registrationService) RegisterRider(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return s.registerIdentityFirst(ctx, input)
}

func (s *registrationService) registerIdentityFirst(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	user := newPendingUser(input, "")

	uid, err := s.createAccount(ctx, input, user)
	if err != nil {
		return nil, err
	}
	user.UID = uid

	if input.ValidIDBase64 != "" {
		key := fmt.Sprintf("valid_ids/%s_%s_validID.jpg", uid, sanitizeEmail(input.Email))
		url, err := s.storeValidID(ctx, key, input.ValidIDBase64)
		if err != nil {
			return nil, err
		}
		user.ValidIDURL = url
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, errors.Wrap(err, "save user document")
	}

	s.logger.Info("user registered",
		slog.String("uid", uid),
		slog.String("role", input.Role),
	)

	return &usecase.RegisterOutput{UID: uid, ImageURL: user.ValidIDURL}, nil
}

func (s *registrationService) createAccount(ctx context.Context, input *usecase.RegisterInput, user *entity.User) (string, error) {
	uid, err := s.identity.CreateAccount(ctx, input.Email, input.Password, user.DisplayName())
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			return "", domainerrors.ErrEmailInUse
		}

		return "", errors.Wrap(err, "create identity account")
	}

	return uid, nil
}

func (s *registrationService) storeValidID(ctx context.Context, key, encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", domainerrors.ErrInvalidImage.WithDetails(err.Error())
	}

	url, err := s.media.SavePublicObject(ctx, key, data, validIDContentType)
	if err != nil {
		return "", errors.Wrap(err, "store verification image")
	}

	return url, nil
}

func newPendingUser(input *usecase.RegisterInput, imageURL string) *entity.User {
	return &entity.User{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Role:          entity.Role(input.Role),
		Status:        entity.StatusPending,
		Address:       input.Address,
		ContactNumber: input.ContactNumber,
		Birthday:      input.Birthday,
		Vehicle:       input.Vehicle,
		ValidIDURL:    imageURL,
		AgreedToTerms: input.AgreedToTerms,
		CreatedAt:     time.Now().UTC(),
	}
}

// sanitizeEmail makes an email usable inside an object key.
func sanitizeEmail(email string) string {
	return strings.NewReplacer("@", "_", ".", "_").Replace(email)
}
