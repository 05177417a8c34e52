package impl

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"agriconnect/internal/domain/entity"
	domainerrors "agriconnect/internal/domain/errors"
	"agriconnect/internal/domain/service"
	mockRepo "agriconnect/internal/mocks/repository"
	mockSvc "agriconnect/internal/mocks/service"
	"agriconnect/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRegistrationService(t *testing.T) (
	usecase.RegistrationUsecase,
	*mockRepo.MockUserRepository,
	*mockSvc.MockIdentityService,
	*mockSvc.MockMediaStorage,
) {
	users := mockRepo.NewMockUserRepository(t)
	identity := mockSvc.NewMockIdentityService(t)
	media := mockSvc.NewMockMediaStorage(t)

	svc := NewRegistrationService(newDiscardLogger(), users, identity, media)

	return svc, users, identity, media
}

func encodedImage(t *testing.T) string {
	t.Helper()

	return base64.StdEncoding.EncodeToString([]byte("fake image bytes"))
}

func TestRegistrationService_RegisterBuyer_Success(t *testing.T) {
	svc, users, identity, media := createTestRegistrationService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane.doe@example.com",
		Password:      "secret123",
		Role:          "buyer",
		ValidIDBase64: encodedImage(t),
		AgreedToTerms: true,
	}

	media.EXPECT().
		SavePublicObject(ctx, "valid_ids/temp_jane_doe_example_com_validID.jpg", []byte("fake image bytes"), "image/jpeg").
		Return("https://storage.example.com/valid_ids/temp_jane_doe_example_com_validID.jpg", nil)

	users.EXPECT().
		SaveTemp(ctx, mock.MatchedBy(func(id string) bool {
			return strings.HasPrefix(id, "temp_")
		}), mock.Anything).
		Return(nil)

	identity.EXPECT().
		CreateAccount(ctx, "jane.doe@example.com", "secret123", "Jane Doe").
		Return("uid-buyer-1", nil)

	var saved *entity.User
	users.EXPECT().
		Save(ctx, mock.Anything).
		Run(func(_ context.Context, user *entity.User) {
			saved = user
		}).
		Return(nil)

	users.EXPECT().
		DeleteTemp(ctx, mock.MatchedBy(func(id string) bool {
			return strings.HasPrefix(id, "temp_")
		})).
		Return(nil)

	out, err := svc.RegisterBuyer(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "uid-buyer-1", out.UID)
	assert.Equal(t, "https://storage.example.com/valid_ids/temp_jane_doe_example_com_validID.jpg", out.ImageURL)

	require.NotNil(t, saved)
	assert.Equal(t, "uid-buyer-1", saved.UID)
	assert.Equal(t, entity.RoleBuyer, saved.Role)
	assert.Equal(t, entity.StatusPending, saved.Status)
	assert.True(t, saved.AgreedToTerms)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestRegistrationService_RegisterBuyer_NoImage(t *testing.T) {
	svc, users, identity, _ := createTestRegistrationService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret123",
		Role:      "buyer",
	}

	users.EXPECT().SaveTemp(ctx, mock.Anything, mock.Anything).Return(nil)
	identity.EXPECT().
		CreateAccount(ctx, "jane@example.com", "secret123", "Jane Doe").
		Return("uid-buyer-2", nil)
	users.EXPECT().Save(ctx, mock.Anything).Return(nil)
	users.EXPECT().DeleteTemp(ctx, mock.Anything).Return(nil)

	out, err := svc.RegisterBuyer(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "uid-buyer-2", out.UID)
	assert.Empty(t, out.ImageURL)
}

func TestRegistrationService_RegisterBuyer_InvalidImage(t *testing.T) {
	svc, _, _, _ := createTestRegistrationService(t)

	out, err := svc.RegisterBuyer(context.Background(), &usecase.RegisterInput{
		Email:         "jane@example.com",
		Password:      "secret123",
		ValidIDBase64: "not base64 at all!!!",
	})

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrInvalidImage)
	assert.Nil(t, out)
}

func TestRegistrationService_RegisterBuyer_EmailTaken(t *testing.T) {
	svc, users, identity, _ := createTestRegistrationService(t)

	ctx := context.Background()
	users.EXPECT().SaveTemp(ctx, mock.Anything, mock.Anything).Return(nil)
	identity.EXPECT().
		CreateAccount(ctx, "taken@example.com", "secret123", mock.Anything).
		Return("", service.ErrEmailAlreadyExists)

	out, err := svc.RegisterBuyer(ctx, &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "secret123",
	})

	require.ErrorIs(t, err, domainerrors.ErrEmailInUse)
	assert.Nil(t, out)
}

func TestRegistrationService_RegisterSeller_Success(t *testing.T) {
	svc, users, identity, media := createTestRegistrationService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName:     "Sam",
		LastName:      "Seller",
		Email:         "sam@farm.ph",
		Password:      "secret123",
		Role:          "seller",
		ValidIDBase64: encodedImage(t),
	}

	identity.EXPECT().
		CreateAccount(ctx, "sam@farm.ph", "secret123", "Sam Seller").
		Return("uid-seller-1", nil)

	media.EXPECT().
		SavePublicObject(ctx, "valid_ids/uid-seller-1_sam_farm_ph_validID.jpg", []byte("fake image bytes"), "image/jpeg").
		Return("https://storage.example.com/valid_ids/uid-seller-1_sam_farm_ph_validID.jpg", nil)

	var saved *entity.User
	users.EXPECT().
		Save(ctx, mock.Anything).
		Run(func(_ context.Context, user *entity.User) {
			saved = user
		}).
		Return(nil)

	out, err := svc.RegisterSeller(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "uid-seller-1", out.UID)

	require.NotNil(t, saved)
	assert.Equal(t, entity.RoleSeller, saved.Role)
	assert.Equal(t, out.ImageURL, saved.ValidIDURL)
}

func TestRegistrationService_RegisterRider_CarriesVehicle(t *testing.T) {
	svc, users, identity, _ := createTestRegistrationService(t)

	ctx := context.Background()
	identity.EXPECT().
		CreateAccount(ctx, "rider@example.com", "secret123", "Rey Rider").
		Return("uid-rider-1", nil)

	var saved *entity.User
	users.EXPECT().
		Save(ctx, mock.Anything).
		Run(func(_ context.Context, user *entity.User) {
			saved = user
		}).
		Return(nil)

	_, err := svc.RegisterRider(ctx, &usecase.RegisterInput{
		FirstName: "Rey",
		LastName:  "Rider",
		Email:     "rider@example.com",
		Password:  "secret123",
		Role:      "rider",
		Vehicle:   "motorcycle",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, entity.RoleRider, saved.Role)
	assert.Equal(t, "motorcycle", saved.Vehicle)
}
