// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their store-assigned identifier.
	// Returns ErrUserNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// Returns ErrUserNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves every user record in store-native order. No
	// ordering is guaranteed to callers.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user and writes the store-assigned identifier
	// back onto the entity.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites the stored record matching the entity's identifier.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the record matching the identifier. Deleting an
	// absent record is not an error; the operation is idempotent.
	Delete(ctx context.Context, id string) error
}
