// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"
	"sync"
	"time"

	"cabinet/config"
	deliverycontext "cabinet/internal/delivery/context"
	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/repository"
	"cabinet/internal/domain/service"
	"cabinet/internal/errors"
	"cabinet/internal/usecase"
	"cabinet/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	limiter           service.LoginLimiter
	maxActiveSessions int
	logger            *slog.Logger
	now               func() time.Time

	// dummyHash is verified against when the account does not exist so an
	// unknown email costs as much as a wrong password. It is built on first
	// use and rebuilt until that succeeds.
	dummyMu   sync.Mutex
	dummyHash string
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Limiter          service.LoginLimiter
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		limiter:           params.Limiter,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
		now:               time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the password and opens a session. Unknown accounts, wrong
// passwords and unreadable stored hashes all fail with ErrInvalidCredentials.
// A hasher that cannot run fails with ErrPasswordHashFailed and is not
// counted as a failed attempt.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	if err := srv.checkLockout(ctx, email); err != nil {
		return nil, err
	}

	user, credential, err := srv.loadLoginCredential(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load login credential")
	}

	// Verification runs outside any transaction; bcrypt is CPU-bound.
	var storedHash string
	if credential != nil {
		storedHash = credential.StoredHash
	} else if storedHash, err = srv.timingHash(ctx); err != nil {
		return nil, srv.hashUnavailable(ctx, err)
	}

	matched, err := srv.hasher.Verify(ctx, storedHash, input.Password)
	if err != nil {
		return nil, srv.hashUnavailable(ctx, err)
	}
	if credential == nil || !matched {
		return nil, srv.rejectLogin(ctx, email)
	}

	if err := srv.limiter.Reset(ctx, email); err != nil {
		srv.log(ctx).Warn("Failed to reset login failures", slog.Any("error", err))
	}
	srv.upgradeCredential(ctx, credential, input.Password)

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID, entity.RoleClaimFor(user.Role))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistLoginRefreshToken(ctx, user.ID, refreshTokenString); err != nil {
		srv.log(ctx).Warn("Login failed", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}
	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID), slog.String("role", string(user.Role)))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
	}, nil
}

func (srv *userService) checkLockout(ctx context.Context, email string) error {
	locked, remaining, err := srv.limiter.Locked(ctx, email)
	if err != nil {
		// The limiter is best effort; an outage must not block sign-in.
		srv.log(ctx).Warn("Login limiter unavailable", slog.Any("error", err))

		return nil
	}
	if locked {
		srv.log(ctx).Warn("Login rejected, account locked", slog.String("email", email))

		return errors.WithStack(domainerrors.ErrTooManyAttempts.WithDetails("retry in " + util.FormatDuration(remaining)))
	}

	return nil
}

func (srv *userService) hashUnavailable(ctx context.Context, err error) error {
	srv.log(ctx).Error("Password verification unavailable", slog.Any("error", err))

	return errors.Wrap(err, "failed to verify password")
}

func (srv *userService) rejectLogin(ctx context.Context, email string) error {
	locked, err := srv.limiter.RegisterFailure(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Failed to record login failure", slog.Any("error", err))
	}
	if locked {
		srv.log(ctx).Warn("Account locked after repeated failures", slog.String("email", email))
	}
	srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

	return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
}

// loadLoginCredential returns a nil credential, and no error, when the
// account or its credential does not exist.
func (srv *userService) loadLoginCredential(ctx context.Context, email string) (*entity.User, *entity.Credential, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find user by email")
	}

	credential, err := srv.authRepo.FindCredentialByUserID(ctx, user.ID)
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return user, nil, nil
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find credential")
	}

	return user, credential, nil
}

func (srv *userService) timingHash(ctx context.Context) (string, error) {
	srv.dummyMu.Lock()
	defer srv.dummyMu.Unlock()

	if srv.dummyHash != "" {
		return srv.dummyHash, nil
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate timing password")
	}
	// Detached from the request so a cancelled caller does not poison the
	// shared value; the hasher still applies its own timeout.
	hash, err := srv.hasher.Hash(context.WithoutCancel(ctx), "Aa1!"+hex.EncodeToString(buf))
	if err != nil {
		return "", errors.Wrap(err, "failed to prepare timing hash")
	}
	srv.dummyHash = hash

	return hash, nil
}

// upgradeCredential re-hashes a verified password whose stored cost is below
// the current one. Failures only cost the upgrade, never the login.
func (srv *userService) upgradeCredential(ctx context.Context, credential *entity.Credential, password string) {
	if !srv.hasher.NeedsRehash(credential.StoredHash) {
		return
	}

	upgraded, err := srv.newCredential(ctx, credential.UserID, password)
	if err != nil {
		srv.log(ctx).Warn("Failed to rehash password", slog.Any("userID", credential.UserID), slog.Any("error", err))

		return
	}
	if err := srv.authRepo.ReplaceCredential(ctx, upgraded); err != nil {
		srv.log(ctx).Warn("Failed to store rehashed password", slog.Any("userID", credential.UserID), slog.Any("error", err))

		return
	}
	srv.log(ctx).Info("Password hash upgraded", slog.Any("userID", credential.UserID), slog.Int("cost", upgraded.CostFactor))
}

func (srv *userService) newCredential(ctx context.Context, userID uuid.UUID, password string) (*entity.Credential, error) {
	return buildCredential(ctx, srv.hasher, userID, password)
}

func (srv *userService) persistLoginRefreshToken(ctx context.Context, userID uuid.UUID, refreshTokenString string) error {
	if srv.maxActiveSessions > 0 {
		// When session limit is enabled, keep lock/count/insert in one short transaction.
		if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return srv.storeRefreshToken(ctx, repoFactory, userID, refreshTokenString)
		}); err != nil {
			return errors.Wrap(err, "failed to execute user login transaction")
		}

		return nil
	}

	// No session limit: direct insert avoids unnecessary transaction overhead.
	return srv.storeRefreshTokenWithRepo(ctx, srv.refreshTokenRepo, userID, refreshTokenString)
}

// storeRefreshToken enforces the session cap under the user's row lock.
func (srv *userService) storeRefreshToken(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, refreshTokenString string) error {
	refreshRepo := repoFactory.RefreshTokenRepo()

	if err := repoFactory.UserRepo().AcquireSessionMutex(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to lock user row for session limit check")
	}

	activeSessions, err := refreshRepo.CountActiveSessionsByUserID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to count active sessions")
	}
	if activeSessions >= srv.maxActiveSessions {
		return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
	}

	return srv.storeRefreshTokenWithRepo(ctx, refreshRepo, userID, refreshTokenString)
}

func (srv *userService) storeRefreshTokenWithRepo(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshTokenString string) error {
	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// RefreshToken issues a new access token carrying the user's current role.
// The refresh token itself is left unchanged.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "invalid refresh token")
	}

	if _, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken)); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, entity.RoleClaimFor(user.Role))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout ends the session of the given refresh token. Unknown tokens are not an error.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Debug("Logout with invalid token", slog.Any("error", err))
	}

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	return user, nil
}

// ChangePassword replaces the caller's password after checking the current
// one, then ends every session of the account.
func (srv *userService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(err, "new password rejected")
	}

	credential, err := srv.authRepo.FindCredentialByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "no credential for user")
		}

		return errors.Wrap(err, "failed to find credential")
	}
	matched, err := srv.hasher.Verify(ctx, credential.StoredHash, input.CurrentPassword)
	if err != nil {
		return errors.Wrap(err, "failed to verify current password")
	}
	if !matched {
		return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password does not match")
	}

	replacement, err := srv.newCredential(ctx, input.UserID, input.NewPassword)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AuthRepo().ReplaceCredential(ctx, replacement); err != nil {
			return errors.Wrap(err, "failed to replace credential")
		}

		return errors.Wrap(repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, input.UserID), "failed to revoke sessions")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to change password", slog.Any("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to change password")
	}
	srv.log(ctx).Info("Password changed", slog.Any("userID", input.UserID))

	return nil
}

func (srv *userService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired refresh tokens")
	}
	if removed > 0 {
		srv.log(ctx).Info("Expired sessions removed", slog.Int64("count", removed))
	}

	return removed, nil
}

// buildCredential hashes password into a new credential for userID.
func buildCredential(ctx context.Context, hasher service.PasswordHasher, userID uuid.UUID, password string) (*entity.Credential, error) {
	storedHash, err := hasher.Hash(ctx, password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	cost, err := hasher.Cost(storedHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read hash cost")
	}

	return &entity.Credential{
		UserID:     userID,
		StoredHash: storedHash,
		CostFactor: cost,
	}, nil
}

func mapUserLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
	}

	return errors.Wrap(err, "failed to find user")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
