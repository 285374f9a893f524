// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// PasswordUnchanged is the reserved sentinel an update payload carries in
// its password field to mean "keep the stored password". It mirrors the
// wire contract of the consuming client. A real password equal to this
// literal cannot be set through update; that collision is a known
// limitation of the sentinel approach.
const PasswordUnchanged = "no-password"

// --- Input DTOs ---

// CreateUserInput defines the data required to create a new user.
type CreateUserInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

// AuthenticateInput defines the data required for a user to log in.
type AuthenticateInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserInput defines the data required to update an existing user.
// Password may be the PasswordUnchanged sentinel to keep the stored hash.
type UpdateUserInput struct {
	ID        string `json:"id" validate:"required,objectid"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

// IdentifierInput carries a bare store identifier for lookup and delete.
type IdentifierInput struct {
	ID string `json:"id" validate:"required,objectid"`
}

// --- Output DTOs ---

// AuthenticateOutput returns the issued bearer token along with the
// authenticated user (password field already cleared).
type AuthenticateOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase is the single authority for user state transitions.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// CreateUser validates the payload, enforces email uniqueness, hashes
	// the password and persists a new user.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// Authenticate verifies email/password and returns the user plus a
	// signed bearer token. Unknown email and wrong password produce the
	// identical error.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)

	// ListUsers returns every user in store-native order.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser returns the user with the given identifier, or (nil, nil)
	// when no record exists; absence is not an error for plain lookups.
	GetUser(ctx context.Context, id string) (*entity.User, error)

	// UpdateUser overwrites names and email, and replaces the password
	// only when the payload carries a value other than PasswordUnchanged.
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes the record; deleting an absent record succeeds.
	DeleteUser(ctx context.Context, id string) error
}
