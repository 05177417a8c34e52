package firestoredb

import (
	"context"

	"agriconnect/internal/domain/entity"
	"agriconnect/internal/domain/repository"
	"agriconnect/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// userRepository implements repository.UserRepository on the document
// store.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

// Save writes the user document under its uid.
func (repo *userRepository) Save(ctx context.Context, user *entity.User) error {
	_, err := repo.client.Collection(usersCollection).Doc(user.UID).Set(ctx, toUserModel(user))
	if err != nil {
		return errors.Wrap(err, "failed to save user")
	}

	return nil
}

// FindByID retrieves a user by uid.
func (repo *userRepository) FindByID(ctx context.Context, uid string) (*entity.User, error) {
	snap, err := repo.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	var userM model.UserModel
	if err := snap.DataTo(&userM); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	return toUserDomain(uid, &userM), nil
}

// SaveTemp stages a pre-identity user record under a temporary key.
func (repo *userRepository) SaveTemp(ctx context.Context, tempID string, user *entity.User) error {
	_, err := repo.client.Collection(tempUsersCollection).Doc(tempID).Set(ctx, toUserModel(user))
	if err != nil {
		return errors.Wrap(err, "failed to stage user record")
	}

	return nil
}

// DeleteTemp removes a staged pre-identity record.
func (repo *userRepository) DeleteTemp(ctx context.Context, tempID string) error {
	_, err := repo.client.Collection(tempUsersCollection).Doc(tempID).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to delete staged user record")
	}

	return nil
}

func toUserModel(user *entity.User) *model.UserModel {
	return &model.UserModel{
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		Role:          string(user.Role),
		Status:        user.Status,
		Address:       user.Address,
		ContactNumber: user.ContactNumber,
		Birthday:      user.Birthday,
		Vehicle:       user.Vehicle,
		ValidIDURL:    user.ValidIDURL,
		AgreedToTerms: user.AgreedToTerms,
		ExpoPushToken: user.ExpoPushToken,
		CreatedAt:     user.CreatedAt,
	}
}

func toUserDomain(uid string, userM *model.UserModel) *entity.User {
	return &entity.User{
		UID:           uid,
		FirstName:     userM.FirstName,
		LastName:      userM.LastName,
		Email:         userM.Email,
		Role:          entity.Role(userM.Role),
		Status:        userM.Status,
		Address:       userM.Address,
		ContactNumber: userM.ContactNumber,
		Birthday:      userM.Birthday,
		Vehicle:       userM.Vehicle,
		ValidIDURL:    userM.ValidIDURL,
		AgreedToTerms: userM.AgreedToTerms,
		ExpoPushToken: userM.ExpoPushToken,
		CreatedAt:     userM.CreatedAt,
	}
}
