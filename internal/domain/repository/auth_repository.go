package repository

import (
	"context"

	"cabinet/internal/domain/entity"
	"cabinet/internal/errors"

	"github.com/google/uuid"
)

// ErrCredentialNotFound is returned when an account has no stored password.
var ErrCredentialNotFound = errors.New("credential not found")

// AuthRepository is the account store for password credentials.
// It holds exactly one credential per user.
type AuthRepository interface {
	// CreateCredential stores the first credential of a user.
	CreateCredential(ctx context.Context, credential *entity.Credential) error

	// FindCredentialByUserID returns the user's current credential.
	FindCredentialByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)

	// ReplaceCredential swaps the stored hash and cost of an existing credential.
	ReplaceCredential(ctx context.Context, credential *entity.Credential) error

	// DeleteCredentialByUserID destroys the user's credential.
	DeleteCredentialByUserID(ctx context.Context, userID uuid.UUID) error
}
