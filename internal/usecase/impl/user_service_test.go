package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = "64dbff7f9f1b2c3d4e5f6a7b"

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockUserRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
}

func createTestUserService(t *testing.T, mailer service.Mailer) userServiceFixtures {
	t.Helper()

	userRepo := &mockUserRepository{}
	hasher := &mockPasswordHasher{}
	tokenService := &mockTokenService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Mailer:       mailer,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	fx := createTestUserService(t, nil)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		FirstName: "Jhon",
		LastName:  "Doe",
		Email:     "jhondoe@mail.com",
		Password:  "$L1d2ask,",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = testUserID
		}).
		Return(nil)

	user, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, testUserID, user.ID)
	assert.Equal(t, "Jhon", user.FirstName)
	assert.Equal(t, "Doe", user.LastName)
	assert.Equal(t, input.Email, user.Email)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	fx.userRepo.AssertExpectations(t)
}

func TestUserService_CreateUser_InvalidPayload(t *testing.T) {
	fx := createTestUserService(t, nil)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		FirstName: "Jhon",
		LastName:  "Doe",
		Email:     "not-an-email",
		Password:  "secret",
	}

	user, err := fx.service.CreateUser(ctx, input)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_CreateUser_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestUserService(t, nil)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		FirstName: "Jhon",
		LastName:  "Doe",
		Email:     "jhondoe@mail.com",
		Password:  "secret",
	}

	existing := &entity.User{ID: testUserID, Email: input.Email}
	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(existing, nil)

	user, err := fx.service.CreateUser(ctx, input)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_CreateUser_DuplicateRaceSurfacesSameError(t *testing.T) {
	fx := createTestUserService(t, nil)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		FirstName: "Jhon",
		LastName:  "Doe",
		Email:     "jhondoe@mail.com",
		Password:  "secret",
	}

	// The pre-insert check passes but a concurrent create wins the insert;
	// the repository reports the unique-index violation as the domain error.
	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailAlreadyRegistered.WrapMessage("insert failed"))

	user, err := fx.service.CreateUser(ctx, input)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestUserService_CreateUser_SendsWelcomeMail(t *testing.T) {
	mailer := newRecordingMailer()
	fx := createTestUserService(t, mailer)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		FirstName: "Jhon",
		LastName:  "Doe",
		Email:     "jhondoe@mail.com",
		Password:  "secret",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	_, err := fx.service.CreateUser(ctx, input)
	require.NoError(t, err)

	select {
	case sent := <-mailer.sent:
		assert.Equal(t, "jhondoe@mail.com", sent[0])
		assert.Equal(t, "Jhon Doe", sent[1])
	case <-time.After(time.Second):
		t.Fatal("welcome mail was never sent")
	}
}

func TestUserService_Authenticate_Success(t *testing.T) {
	fx := createTestUserService(t, nil)

	ctx := context.Background()
	input := &usecase.AuthenticateInput{
		Email:    "jhondoe@mail.com",
		Password: "$L1d2ask,",
	}

	stored := &entity.User{
		ID:           testUserID,
		FirstName:    "Jhon",
		LastName:     "Doe",
		Email:        input.Email,
		PasswordHash: "hashed_password",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(stored, nil)
	fx.hasher.On("Check", input.Password, stored.PasswordHash).Return(true)
	fx.tokenService.On("Generate", stored.Email).Return("signed.jwt.token", nil)

	output, err := fx.service.Authenticate(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, testUserID, output.User.ID)
	assert.Empty(t, output.User.PasswordHash)
}

func TestUserService_Authenticate_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t, nil)

	ctx := context.Background()
	input := &usecase.AuthenticateInput{
		Email:    "nobody@mail.com",
		Password: "whatever",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Authenticate(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	fx := createTestUserService(t, nil)

	ctx := context.Background()
	input := &usecase.AuthenticateInput{
		Email:    "jhondoe@mail.com",
		Password: "wrong",
	}

	stored := &entity.User{ID: testUserID, Email: input.Email, PasswordHash: "hashed_password"}
	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(stored, nil)
	fx.hasher.On("Check", input.Password, stored.PasswordHash).Return(false)

	output, err := fx.service.Authenticate(ctx, input)

	assert.Nil(t, output)
	// Same error as for an unknown email; responses must not reveal which
	// part of the credentials was wrong.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Authenticate_InvalidPayload(t *testing.T) {
	fx := createTestUserService(t, nil)

	output, err := fx.service.Authenticate(context.Background(), &usecase.AuthenticateInput{
		Email: "jhondoe@mail.com",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestUserService_ListUsers_StripsPasswordHashes(t *testing.T) {
	fx := createTestUserService(t, nil)

	ctx := context.Background()
	stored := []*entity.User{
		{ID: testUserID, FirstName: "Jhon", Email: "jhondoe@mail.com", PasswordHash: "hash-a"},
		{ID: "64dbff7f9f1b2c3d4e5f6a7c", FirstName: "Jane", Email: "jane@mail.com", PasswordHash: "hash-b"},
	}
	fx.userRepo.On("FindAll", ctx).Return(stored, nil)

	users, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, user := range users {
		assert.Empty(t, user.PasswordHash)
	}
	// The stored entities themselves must stay intact.
	assert.Equal(t, "hash-a", stored[0].PasswordHash)
}

func TestUserService_GetUser_Success(t *testing.T) {
	fx := createTestUserService(t, nil)

	ctx := context.Background()
	stored := &entity.User{ID: testUserID, FirstName: "Jhon", Email: "jhondoe@mail.com", PasswordHash: "hash"}
	fx.userRepo.On("FindByID", ctx, testUserID).Return(stored, nil)

	user, err := fx.service.GetUser(ctx, testUserID)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, testUserID, user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_GetUser_AbsentIsNotAnError(t *testing.T) {
	fx := createTestUserService(t, nil)

	ctx := context.Background()
	fx.userRepo.On("FindByID", ctx, testUserID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, testUserID)

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserService_GetUser_InvalidIdentifier(t *testing.T) {
	fx := createTestUserService(t, nil)

	user, err := fx.service.GetUser(context.Background(), "not-hex")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUserService_UpdateUser_SentinelKeepsStoredPassword(t *testing.T) {
	fx := createTestUserService(t, nil)

	ctx := context.Background()
	input := &usecase.UpdateUserInput{
		ID:        testUserID,
		FirstName: "Jhon",
		LastName:  "Doe",
		Email:     "jhondoe@mail.com",
		Password:  usecase.PasswordUnchanged,
	}

	stored := &entity.User{
		ID:           testUserID,
		FirstName:    "Old",
		LastName:     "Name",
		Email:        "old@mail.com",
		PasswordHash: "stored_hash",
	}
	fx.userRepo.On("FindByID", ctx, testUserID).Return(stored, nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.UpdateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Jhon", user.FirstName)
	assert.Equal(t, "jhondoe@mail.com", user.Email)
	assert.Equal(t, "stored_hash", stored.PasswordHash)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_UpdateUser_NewPasswordIsRehashed(t *testing.T) {
	fx := createTestUserService(t, nil)

	ctx := context.Background()
	input := &usecase.UpdateUserInput{
		ID:        testUserID,
		FirstName: "Jhon",
		LastName:  "Doe",
		Email:     "jhondoe@mail.com",
		Password:  "new-secret",
	}

	stored := &entity.User{ID: testUserID, PasswordHash: "stored_hash", Email: "old@mail.com"}
	fx.userRepo.On("FindByID", ctx, testUserID).Return(stored, nil)
	fx.hasher.On("Hash", "new-secret").Return("new_hash", nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.UpdateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "new_hash", stored.PasswordHash)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_UpdateUser_TargetAbsent(t *testing.T) {
	fx := createTestUserService(t, nil)

	ctx := context.Background()
	input := &usecase.UpdateUserInput{
		ID:        testUserID,
		FirstName: "Jhon",
		LastName:  "Doe",
		Email:     "jhondoe@mail.com",
		Password:  usecase.PasswordUnchanged,
	}

	fx.userRepo.On("FindByID", ctx, testUserID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.UpdateUser(ctx, input)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	fx := createTestUserService(t, nil)

	ctx := context.Background()
	fx.userRepo.On("Delete", ctx, testUserID).Return(nil)

	require.NoError(t, fx.service.DeleteUser(ctx, testUserID))
	fx.userRepo.AssertExpectations(t)
}

func TestUserService_DeleteUser_InvalidIdentifier(t *testing.T) {
	fx := createTestUserService(t, nil)

	err := fx.service.DeleteUser(context.Background(), "1234")

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
