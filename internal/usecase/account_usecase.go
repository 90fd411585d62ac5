package usecase

import (
	"context"

	"cabinet/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAccountInput is an administrator provisioning a new account.
type CreateAccountInput struct {
	Email    string
	Name     string
	Password string
	Role     entity.Role
	Ward     string
}

// ListAccountsInput pages through accounts.
type ListAccountsInput struct {
	Role   entity.Role
	Limit  int
	Offset int
}

// AccountPage is one page of accounts with the total count.
type AccountPage struct {
	Users []*entity.User
	Total int64
}

// ResetPasswordInput is an administrator setting another user's password.
type ResetPasswordInput struct {
	UserID      uuid.UUID
	NewPassword string
}

// AccountUsecase is the administrator's account management.
type AccountUsecase interface {
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.User, error)
	ListAccounts(ctx context.Context, input *ListAccountsInput) (*AccountPage, error)
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	// DeleteAccount removes the user with its credential and sessions.
	// An administrator cannot delete their own account.
	DeleteAccount(ctx context.Context, actorID, userID uuid.UUID) error
}
