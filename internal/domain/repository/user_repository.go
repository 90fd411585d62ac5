// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"cabinet/internal/domain/entity"
	"cabinet/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserListFilter narrows account listings.
type UserListFilter struct {
	Role   entity.Role // empty for all roles
	Limit  int
	Offset int
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns a page of users and the total matching count.
	List(ctx context.Context, filter UserListFilter) ([]*entity.User, int64, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user. Credentials and sessions cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	// AcquireSessionMutex row-locks the user for the rest of the transaction.
	AcquireSessionMutex(ctx context.Context, id uuid.UUID) error
}
