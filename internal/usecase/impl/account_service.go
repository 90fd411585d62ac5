package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cabinet/internal/delivery/context"
	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/repository"
	"cabinet/internal/domain/service"
	"cabinet/internal/errors"
	"cabinet/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type accountService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAccount stores the user and its credential in one transaction. The
// password is hashed before the transaction starts.
func (srv *accountService) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*entity.User, error) {
	if !input.Role.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("role must be admin or staff"))
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(err, "password rejected")
	}

	credential, err := buildCredential(ctx, srv.hasher, uuid.Nil, input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email: normalizeEmail(input.Email),
		Name:  strings.TrimSpace(input.Name),
		Role:  input.Role,
		Ward:  strings.TrimSpace(input.Ward),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		credential.UserID = user.ID
		if err := repoFactory.AuthRepo().CreateCredential(ctx, credential); err != nil {
			return errors.Wrap(err, "failed to create credential")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create account", slog.String("email", user.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account creation transaction")
	}
	srv.log(ctx).Info("Account created", slog.Any("userID", user.ID), slog.String("role", string(user.Role)))

	return user, nil
}

func (srv *accountService) ListAccounts(ctx context.Context, input *usecase.ListAccountsInput) (*usecase.AccountPage, error) {
	if input.Role != "" && !input.Role.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown role filter"))
	}

	users, total, err := srv.userRepo.List(ctx, repository.UserListFilter{
		Role:   input.Role,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return &usecase.AccountPage{Users: users, Total: total}, nil
}

// ResetPassword sets a new password for another user and ends their sessions.
func (srv *accountService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(err, "password rejected")
	}

	credential, err := buildCredential(ctx, srv.hasher, input.UserID, input.NewPassword)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, input.UserID); err != nil {
			return mapUserLookupError(err)
		}

		authRepo := repoFactory.AuthRepo()
		err := authRepo.ReplaceCredential(ctx, credential)
		if errors.Is(err, repository.ErrCredentialNotFound) {
			err = authRepo.CreateCredential(ctx, credential)
		}
		if err != nil {
			return errors.Wrap(err, "failed to store credential")
		}

		return errors.Wrap(repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, input.UserID), "failed to revoke sessions")
	})
	if err != nil {
		return errors.Wrap(err, "failed to reset password")
	}
	srv.log(ctx).Info("Password reset by administrator", slog.Any("userID", input.UserID))

	return nil
}

func (srv *accountService) DeleteAccount(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == userID {
		return errors.WithStack(domainerrors.ErrCannotDeleteSelf)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		err := repoFactory.AuthRepo().DeleteCredentialByUserID(ctx, userID)
		if err != nil && !errors.Is(err, repository.ErrCredentialNotFound) {
			return errors.Wrap(err, "failed to delete credential")
		}

		if err := repoFactory.UserRepo().Delete(ctx, userID); err != nil {
			return mapUserLookupError(err)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete account")
	}
	srv.log(ctx).Info("Account deleted", slog.Any("userID", userID), slog.Any("actorID", actorID))

	return nil
}
