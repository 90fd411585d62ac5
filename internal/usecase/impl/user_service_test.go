package impl

import (
	"context"
	"testing"
	"time"

	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/repository"
	"cabinet/internal/domain/service"
	"cabinet/internal/errors"
	mockRepo "cabinet/internal/mocks/repository"
	mockSvc "cabinet/internal/mocks/service"
	"cabinet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	limiter          *mockSvc.MockLoginLimiter
}

func createTestUserService(t *testing.T, maxActiveSessions int) userServiceFixtures {
	fx := userServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		limiter:          mockSvc.NewMockLoginLimiter(t),
	}

	fx.service = NewUserService(UserServiceParams{
		TxManager:        fx.txManager,
		UserRepo:         fx.userRepo,
		AuthRepo:         fx.authRepo,
		RefreshTokenRepo: fx.refreshTokenRepo,
		Hasher:           fx.hasher,
		TokenService:     fx.tokenService,
		Limiter:          fx.limiter,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})

	return fx
}

func testStaffUser() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Email: "nurse@example.com",
		Name:  "Ward Nurse",
		Role:  entity.RoleStaff,
		Ward:  "7B",
	}
}

func (fx userServiceFixtures) expectSessionStored(ctx context.Context, userID uuid.UUID) {
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == userID && token.TokenHash == "refresh-hash"
		})).
		Return(nil)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := testStaffUser()
	credential := &entity.Credential{UserID: user.ID, StoredHash: "$2a$12$stored", CostFactor: 12}

	fx.limiter.EXPECT().Locked(ctx, user.Email).Return(false, time.Duration(0), nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.authRepo.EXPECT().FindCredentialByUserID(ctx, user.ID).Return(credential, nil)
	fx.hasher.EXPECT().Verify(ctx, credential.StoredHash, "Password123!").Return(true, nil)
	fx.limiter.EXPECT().Reset(ctx, user.Email).Return(nil)
	fx.hasher.EXPECT().NeedsRehash(credential.StoredHash).Return(false)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, entity.RoleClaimFor(entity.RoleStaff)).
		Return("access-token", "refresh-token", nil)
	fx.expectSessionStored(ctx, user.ID)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "  Nurse@Example.com ", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := testStaffUser()
	credential := &entity.Credential{UserID: user.ID, StoredHash: "$2a$12$stored", CostFactor: 12}

	fx.limiter.EXPECT().Locked(ctx, user.Email).Return(false, time.Duration(0), nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.authRepo.EXPECT().FindCredentialByUserID(ctx, user.ID).Return(credential, nil)
	fx.hasher.EXPECT().Verify(ctx, credential.StoredHash, "wrong").Return(false, nil)
	fx.limiter.EXPECT().RegisterFailure(ctx, user.Email).Return(false, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.False(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_Login_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()

	fx.limiter.EXPECT().Locked(ctx, "ghost@example.com").Return(false, time.Duration(0), nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(mock.Anything, mock.AnythingOfType("string")).Return("$2a$12$dummy", nil).Once()
	fx.hasher.EXPECT().Verify(ctx, "$2a$12$dummy", "Password123!").Return(false, nil).Twice()
	fx.limiter.EXPECT().RegisterFailure(ctx, "ghost@example.com").Return(false, nil).Twice()

	input := &usecase.LoginInput{Email: "ghost@example.com", Password: "Password123!"}
	for range 2 {
		_, err := fx.service.Login(ctx, input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	}
}

func TestUserService_Login_HasherUnavailable(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := testStaffUser()
	credential := &entity.Credential{UserID: user.ID, StoredHash: "$2a$12$stored", CostFactor: 12}
	saturated := errors.Join(domainerrors.ErrPasswordHashFailed, context.DeadlineExceeded)

	fx.limiter.EXPECT().Locked(ctx, user.Email).Return(false, time.Duration(0), nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.authRepo.EXPECT().FindCredentialByUserID(ctx, user.ID).Return(credential, nil)
	fx.hasher.EXPECT().Verify(ctx, credential.StoredHash, "Password123!").Return(false, saturated)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.limiter.AssertNotCalled(t, "RegisterFailure", mock.Anything, mock.Anything)
}

func TestUserService_Login_TimingHashRetriedAfterFailure(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "ghost@example.com", Password: "Password123!"}
	fx.limiter.EXPECT().Locked(ctx, input.Email).Return(false, time.Duration(0), nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().Hash(mock.Anything, mock.AnythingOfType("string")).
		Return("", errors.Join(domainerrors.ErrPasswordHashFailed, context.Canceled)).Once()

	_, err := fx.service.Login(ctx, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))

	fx.hasher.EXPECT().Hash(mock.Anything, mock.AnythingOfType("string")).Return("$2a$12$dummy", nil).Once()
	fx.hasher.EXPECT().Verify(ctx, "$2a$12$dummy", "Password123!").Return(false, nil).Twice()
	fx.limiter.EXPECT().RegisterFailure(ctx, input.Email).Return(false, nil).Twice()

	for range 2 {
		_, err = fx.service.Login(ctx, input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	}
	fx.hasher.AssertNotCalled(t, "Verify", ctx, "", "Password123!")
}

func TestUserService_Login_MissingCredential(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := testStaffUser()

	fx.limiter.EXPECT().Locked(ctx, user.Email).Return(false, time.Duration(0), nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.authRepo.EXPECT().FindCredentialByUserID(ctx, user.ID).Return(nil, repository.ErrCredentialNotFound)
	fx.hasher.EXPECT().Hash(mock.Anything, mock.AnythingOfType("string")).Return("$2a$12$dummy", nil)
	fx.hasher.EXPECT().Verify(ctx, "$2a$12$dummy", "Password123!").Return(false, nil)
	fx.limiter.EXPECT().RegisterFailure(ctx, user.Email).Return(false, nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_LockedOut(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	fx.limiter.EXPECT().Locked(ctx, "nurse@example.com").Return(true, 90*time.Second, nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nurse@example.com", Password: "Password123!"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTooManyAttempts))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "retry in")
}

func TestUserService_Login_LimiterOutageFailsOpen(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := testStaffUser()
	credential := &entity.Credential{UserID: user.ID, StoredHash: "$2a$12$stored", CostFactor: 12}

	fx.limiter.EXPECT().Locked(ctx, user.Email).Return(false, time.Duration(0), errors.New("connection refused"))
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.authRepo.EXPECT().FindCredentialByUserID(ctx, user.ID).Return(credential, nil)
	fx.hasher.EXPECT().Verify(ctx, credential.StoredHash, "Password123!").Return(true, nil)
	fx.limiter.EXPECT().Reset(ctx, user.Email).Return(errors.New("connection refused"))
	fx.hasher.EXPECT().NeedsRehash(credential.StoredHash).Return(false)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, entity.RoleClaimFor(entity.RoleStaff)).
		Return("access-token", "refresh-token", nil)
	fx.expectSessionStored(ctx, user.ID)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestUserService_Login_UpgradesWeakHash(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := testStaffUser()
	credential := &entity.Credential{UserID: user.ID, StoredHash: "$2a$10$old", CostFactor: 10}

	fx.limiter.EXPECT().Locked(ctx, user.Email).Return(false, time.Duration(0), nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.authRepo.EXPECT().FindCredentialByUserID(ctx, user.ID).Return(credential, nil)
	fx.hasher.EXPECT().Verify(ctx, credential.StoredHash, "Password123!").Return(true, nil)
	fx.limiter.EXPECT().Reset(ctx, user.Email).Return(nil)
	fx.hasher.EXPECT().NeedsRehash(credential.StoredHash).Return(true)
	fx.hasher.EXPECT().Hash(ctx, "Password123!").Return("$2a$12$new", nil)
	fx.hasher.EXPECT().Cost("$2a$12$new").Return(12, nil)
	fx.authRepo.EXPECT().
		ReplaceCredential(ctx, &entity.Credential{UserID: user.ID, StoredHash: "$2a$12$new", CostFactor: 12}).
		Return(nil)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, entity.RoleClaimFor(entity.RoleStaff)).
		Return("access-token", "refresh-token", nil)
	fx.expectSessionStored(ctx, user.ID)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
}

func TestUserService_Login_SessionLimitExceeded(t *testing.T) {
	fx := createTestUserService(t, 2)

	ctx := context.Background()
	user := testStaffUser()
	credential := &entity.Credential{UserID: user.ID, StoredHash: "$2a$12$stored", CostFactor: 12}

	fx.limiter.EXPECT().Locked(ctx, user.Email).Return(false, time.Duration(0), nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.authRepo.EXPECT().FindCredentialByUserID(ctx, user.ID).Return(credential, nil)
	fx.hasher.EXPECT().Verify(ctx, credential.StoredHash, "Password123!").Return(true, nil)
	fx.limiter.EXPECT().Reset(ctx, user.Email).Return(nil)
	fx.hasher.EXPECT().NeedsRehash(credential.StoredHash).Return(false)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, entity.RoleClaimFor(entity.RoleStaff)).
		Return("access-token", "refresh-token", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)
	txUserRepo.EXPECT().AcquireSessionMutex(ctx, user.ID).Return(nil)
	txRefreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, user.ID).Return(2, nil)
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(executeWith(factory))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
}

func TestUserService_RefreshToken(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}

	t.Run("issues access token with current role", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{UserID: user.ID}, nil)
		fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(&entity.RefreshToken{UserID: user.ID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.tokenService.EXPECT().GenerateAccessToken(user.ID, entity.RoleClaimFor(entity.RoleAdmin)).Return("new-access", nil)

		output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", output.AccessToken)
	})

	t.Run("revoked session", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{UserID: user.ID}, nil)
		fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("deleted account", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{UserID: user.ID}, nil)
		fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(&entity.RefreshToken{UserID: user.ID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})
}

func TestUserService_Logout_IsIdempotent(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(nil, errors.New("token expired"))
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").Return(repository.ErrRefreshTokenNotFound)

	assert.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"}))
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_ChangePassword(t *testing.T) {
	userID := uuid.New()
	credential := &entity.Credential{UserID: userID, StoredHash: "$2a$12$stored", CostFactor: 12}

	t.Run("wrong current password", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		ctx := context.Background()

		fx.hasher.EXPECT().ValidatePasswordStrength("NewPassword1!").Return(nil)
		fx.authRepo.EXPECT().FindCredentialByUserID(ctx, userID).Return(credential, nil)
		fx.hasher.EXPECT().Verify(ctx, credential.StoredHash, "wrong").Return(false, nil)

		err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
			UserID:          userID,
			CurrentPassword: "wrong",
			NewPassword:     "NewPassword1!",
		})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("weak new password", func(t *testing.T) {
		fx := createTestUserService(t, 0)

		fx.hasher.EXPECT().ValidatePasswordStrength("short").Return(domainerrors.ErrPasswordStrength)

		err := fx.service.ChangePassword(context.Background(), &usecase.ChangePasswordInput{
			UserID:          userID,
			CurrentPassword: "Password123!",
			NewPassword:     "short",
		})

		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	})

	t.Run("replaces credential and revokes sessions", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		ctx := context.Background()

		fx.hasher.EXPECT().ValidatePasswordStrength("NewPassword1!").Return(nil)
		fx.authRepo.EXPECT().FindCredentialByUserID(ctx, userID).Return(credential, nil)
		fx.hasher.EXPECT().Verify(ctx, credential.StoredHash, "Password123!").Return(true, nil)
		fx.hasher.EXPECT().Hash(ctx, "NewPassword1!").Return("$2a$12$fresh", nil)
		fx.hasher.EXPECT().Cost("$2a$12$fresh").Return(12, nil)

		factory := mockRepo.NewMockRepositoryFactory(t)
		txAuthRepo := mockRepo.NewMockAuthRepository(t)
		txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().AuthRepo().Return(txAuthRepo)
		factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)
		txAuthRepo.EXPECT().
			ReplaceCredential(ctx, &entity.Credential{UserID: userID, StoredHash: "$2a$12$fresh", CostFactor: 12}).
			Return(nil)
		txRefreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)
		fx.txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(executeWith(factory))

		err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
			UserID:          userID,
			CurrentPassword: "Password123!",
			NewPassword:     "NewPassword1!",
		})

		require.NoError(t, err)
	})
}

func TestUserService_CleanupExpiredSessions(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	fx.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(int64(4), nil)

	removed, err := fx.service.CleanupExpiredSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
}
