// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"
	"accounts/internal/validation"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer `optional:"true"`
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser orchestrates the complete user creation process: payload
// validation, uniqueness check, password hashing, persistence.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting user creation", slog.String("email", input.Email))

	if err := validation.CreateUser(input); err != nil {
		srv.log(ctx).Warn("User creation payload rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "create user validation failed")
	}

	// Pre-insert existence check. Two concurrent creates with the same
	// email can both pass it; the unique index on email is the real guard,
	// and Create maps its duplicate-key failure to the same domain error.
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Email already registered", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("user creation failed")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during creation", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during creation")
	}

	newUser := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Error("Failed to persist user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.sendWelcomeMail(ctx, newUser)

	srv.log(ctx).Debug("User created", slog.String("userID", newUser.ID))

	return newUser, nil
}

// sendWelcomeMail delivers the welcome email best-effort in the background.
// Mail failures never fail the creation.
func (srv *userService) sendWelcomeMail(ctx context.Context, user *entity.User) {
	if srv.mailer == nil {
		return
	}

	logger := srv.log(ctx)
	name := user.FirstName + " " + user.LastName

	go func() {
		if err := srv.mailer.SendWelcome(user.Email, name); err != nil {
			logger.Warn("Failed to send welcome email", slog.String("email", user.Email), slog.Any("error", err))
		}
	}()
}

// Authenticate verifies the supplied credentials and issues a bearer token.
func (srv *userService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	srv.log(ctx).Debug("Starting authentication", slog.String("email", input.Email))

	if err := validation.Authenticate(input); err != nil {
		return nil, errors.Wrap(err, "authenticate validation failed")
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Identical failure for unknown email and wrong password so
			// responses never reveal whether an account exists.
			srv.log(ctx).Warn("Authentication failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Authentication failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
	}

	token, err := srv.tokenService.Generate(user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("User authenticated", slog.String("userID", user.ID))

	return &usecase.AuthenticateOutput{
		Token: token,
		User:  user.Sanitized(),
	}, nil
}

// ListUsers returns every user record in store-native order.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	sanitized := make([]*entity.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitized())
	}

	return sanitized, nil
}

// GetUser looks up a single user. Absence is not an error: the result is
// (nil, nil) and the caller decides how to render an empty record.
func (srv *userService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	if err := validation.Identifier(id); err != nil {
		return nil, errors.Wrap(err, "get user validation failed")
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		srv.log(ctx).Error("Failed to find user", slog.String("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user.Sanitized(), nil
}

// UpdateUser overwrites names and email unconditionally and replaces the
// password only when the payload carries a real new value.
func (srv *userService) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting user update", slog.String("userID", input.ID))

	if err := validation.UpdateUser(input); err != nil {
		srv.log(ctx).Warn("User update payload rejected", slog.String("userID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "update user validation failed")
	}

	user, err := srv.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Update target does not exist", slog.String("userID", input.ID))

			return nil, domainerrors.ErrUserNotFound.WrapMessage("user update failed")
		}

		return nil, errors.Wrap(err, "failed to load user for update")
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Email = input.Email

	if input.Password != usecase.PasswordUnchanged {
		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during update", slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to hash password during update")
		}
		user.PasswordHash = hashedPassword
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to persist user update", slog.String("userID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Debug("User updated", slog.String("userID", user.ID))

	return user.Sanitized(), nil
}

// DeleteUser removes a user by identifier. The delete is filter-based and
// idempotent: deleting an absent record succeeds.
func (srv *userService) DeleteUser(ctx context.Context, id string) error {
	srv.log(ctx).Info("Starting user deletion", slog.String("userID", id))

	if err := validation.Identifier(id); err != nil {
		return errors.Wrap(err, "delete user validation failed")
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.String("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Debug("User deleted", slog.String("userID", id))

	return nil
}
