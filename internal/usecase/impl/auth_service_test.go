package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"userregistry/internal/domain/entity"
	domainerrors "userregistry/internal/domain/errors"
	"userregistry/internal/domain/repository"
	"userregistry/internal/domain/service"
	mockRepo "userregistry/internal/mocks/repository"
	mockSvc "userregistry/internal/mocks/service"
	"userregistry/internal/usecase"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	accountRepo      *mockRepo.MockAccountRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	identityVerifier *mockSvc.MockIdentityVerifier
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	identityVerifier := mockSvc.NewMockIdentityVerifier(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:        &stubTxManager{factory: &stubRepositoryFactory{accountRepo: accountRepo}},
		AccountRepo:      accountRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		IdentityVerifier: identityVerifier,
		Config:           newServiceTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return authServiceFixtures{
		service:          svc,
		accountRepo:      accountRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		identityVerifier: identityVerifier,
	}
}

func authorizedAccount() *entity.Account {
	return &entity.Account{
		ID:           7,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "stored-hash",
		Role:         entity.RoleEditorAdmin,
		IsAuthorized: true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()
	account := authorizedAccount()

	fixtures.accountRepo.On("FindByEmail", ctx, "alice@example.com").Return(account, nil)
	fixtures.hasher.On("Check", "Password123!", "stored-hash").Return(true)
	fixtures.tokenService.On("Issue", account).Return("signed-token", nil)

	out, err := fixtures.service.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "Password123!"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, account, out.Account)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.accountRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrAccountNotFound)

	_, err := fixtures.service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()
	account := authorizedAccount()

	fixtures.accountRepo.On("FindByEmail", ctx, account.Email).Return(account, nil)
	fixtures.hasher.On("Check", "wrong", "stored-hash").Return(false)

	_, err := fixtures.service.Login(ctx, usecase.LoginInput{Email: account.Email, Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnapprovedAccountGetsSameSignal(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()
	account := authorizedAccount()
	account.IsAuthorized = false

	fixtures.accountRepo.On("FindByEmail", ctx, account.Email).Return(account, nil)
	fixtures.hasher.On("Check", "Password123!", "stored-hash").Return(true)

	_, err := fixtures.service.Login(ctx, usecase.LoginInput{Email: account.Email, Password: "Password123!"})
	require.Error(t, err)

	// Outwardly identical to a wrong password; no token either way.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, domainerrors.ErrApprovalPending)
}

func TestAuthService_GoogleLogin_FirstSightCreatesPendingViewer(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.identityVerifier.On("VerifyIDToken", mock.Anything, "raw-token").
		Return(&service.ExternalIdentity{Subject: "sub-1", Email: "new@example.com", DisplayName: "New Person"}, nil)
	fixtures.accountRepo.On("FindByGoogleID", mock.Anything, "sub-1").Return(nil, repository.ErrAccountNotFound).Twice()
	fixtures.accountRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
		return a.GoogleID == "sub-1" &&
			a.Role == entity.RoleViewer &&
			a.IsGoogleAuth &&
			!a.IsAuthorized
	})).Return(nil)

	_, err := fixtures.service.GoogleLogin(ctx, usecase.GoogleLoginInput{IDToken: "raw-token"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrApprovalPending)
}

func TestAuthService_GoogleLogin_SecondAttemptStillPending(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()
	pending := &entity.Account{ID: 9, Email: "new@example.com", GoogleID: "sub-1", Role: entity.RoleViewer, IsGoogleAuth: true}

	fixtures.identityVerifier.On("VerifyIDToken", mock.Anything, "raw-token").
		Return(&service.ExternalIdentity{Subject: "sub-1", Email: "new@example.com"}, nil)
	fixtures.accountRepo.On("FindByGoogleID", mock.Anything, "sub-1").Return(pending, nil)

	// No Create expectation: a second login must not duplicate the account.
	_, err := fixtures.service.GoogleLogin(ctx, usecase.GoogleLoginInput{IDToken: "raw-token"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrApprovalPending)
}

func TestAuthService_GoogleLogin_ApprovedAccountGetsToken(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()
	account := authorizedAccount()
	account.GoogleID = "sub-1"
	account.IsGoogleAuth = true

	fixtures.identityVerifier.On("VerifyIDToken", mock.Anything, "raw-token").
		Return(&service.ExternalIdentity{Subject: "sub-1", Email: account.Email}, nil)
	fixtures.accountRepo.On("FindByGoogleID", mock.Anything, "sub-1").Return(account, nil)
	fixtures.tokenService.On("Issue", account).Return("signed-token", nil)

	out, err := fixtures.service.GoogleLogin(ctx, usecase.GoogleLoginInput{IDToken: "raw-token"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
}

func TestAuthService_GoogleLogin_InvalidToken(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.identityVerifier.On("VerifyIDToken", mock.Anything, "raw-token").
		Return(nil, errors.New("signature mismatch"))

	_, err := fixtures.service.GoogleLogin(ctx, usecase.GoogleLoginInput{IDToken: "raw-token"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrGoogleTokenInvalid)
}

func TestAuthService_GoogleLogin_ProviderUnavailablePassesThrough(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.identityVerifier.On("VerifyIDToken", mock.Anything, "raw-token").
		Return(nil, domainerrors.ErrIdentityProviderUnavailable.WrapMessage("cert fetch"))

	_, err := fixtures.service.GoogleLogin(ctx, usecase.GoogleLoginInput{IDToken: "raw-token"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityProviderUnavailable)
}

func TestAuthService_CreateAccount_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.hasher.On("Hash", "Password123!").Return("new-hash", nil)
	fixtures.accountRepo.On("FindByEmail", ctx, "bob@example.com").Return(nil, repository.ErrAccountNotFound)
	fixtures.accountRepo.On("Create", ctx, mock.MatchedBy(func(a *entity.Account) bool {
		return a.Email == "bob@example.com" &&
			a.PasswordHash == "new-hash" &&
			a.Role == entity.RoleCreatorAdmin &&
			a.IsAuthorized
	})).Return(nil)

	out, err := fixtures.service.CreateAccount(ctx, usecase.CreateAccountInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "Password123!",
		Role:     entity.RoleCreatorAdmin,
	})
	require.NoError(t, err)
	assert.True(t, out.Account.IsAuthorized)
}

func TestAuthService_CreateAccount_InvalidRole(t *testing.T) {
	fixtures := createTestAuthService(t)

	_, err := fixtures.service.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "Password123!",
		Role:     entity.Role("SuperUser"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestAuthService_CreateAccount_DuplicateEmail(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.hasher.On("Hash", "Password123!").Return("new-hash", nil)
	fixtures.accountRepo.On("FindByEmail", ctx, "alice@example.com").Return(authorizedAccount(), nil)

	_, err := fixtures.service.CreateAccount(ctx, usecase.CreateAccountInput{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "Password123!",
		Role:     entity.RoleViewer,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_ApproveAccount_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()
	pending := authorizedAccount()
	pending.IsAuthorized = false

	fixtures.accountRepo.On("FindByID", ctx, int64(7)).Return(pending, nil)
	fixtures.accountRepo.On("Update", ctx, mock.MatchedBy(func(a *entity.Account) bool {
		return a.ID == 7 && a.IsAuthorized
	})).Return(nil)

	out, err := fixtures.service.ApproveAccount(ctx, 7)
	require.NoError(t, err)
	assert.True(t, out.Account.IsAuthorized)
}

func TestAuthService_ApproveAccount_AlreadyAuthorized(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.accountRepo.On("FindByID", ctx, int64(7)).Return(authorizedAccount(), nil)

	_, err := fixtures.service.ApproveAccount(ctx, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyAuthorized)
}

func TestAuthService_ApproveAccount_NotFound(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.accountRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrAccountNotFound)

	_, err := fixtures.service.ApproveAccount(ctx, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAuthService_ChangeRole_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()
	account := authorizedAccount()

	fixtures.accountRepo.On("FindByID", ctx, int64(7)).Return(account, nil)
	fixtures.accountRepo.On("Update", ctx, mock.MatchedBy(func(a *entity.Account) bool {
		return a.Role == entity.RoleAdminMaster && a.IsAuthorized
	})).Return(nil)

	out, err := fixtures.service.ChangeRole(ctx, 7, entity.RoleAdminMaster)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdminMaster, out.Account.Role)
	// Approval state survives a role change.
	assert.True(t, out.Account.IsAuthorized)
}

func TestAuthService_ChangeRole_InvalidRole(t *testing.T) {
	fixtures := createTestAuthService(t)

	_, err := fixtures.service.ChangeRole(context.Background(), 7, entity.Role("Root"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestAuthService_UpdateAccount_EditorCannotTouchAdminMaster(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()
	target := authorizedAccount()
	target.Role = entity.RoleAdminMaster

	fixtures.accountRepo.On("FindByID", ctx, int64(7)).Return(target, nil)

	_, err := fixtures.service.UpdateAccount(ctx, 7, usecase.UpdateAccountInput{
		ActorRole: entity.RoleEditorAdmin,
		Username:  "renamed",
		Email:     target.Email,
		Role:      entity.RoleAdminMaster,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthService_UpdateAccount_AdminMasterMayTouchAdminMaster(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()
	target := authorizedAccount()
	target.Role = entity.RoleAdminMaster

	fixtures.accountRepo.On("FindByID", ctx, int64(7)).Return(target, nil)
	fixtures.accountRepo.On("Update", ctx, mock.MatchedBy(func(a *entity.Account) bool {
		return a.Username == "renamed"
	})).Return(nil)

	out, err := fixtures.service.UpdateAccount(ctx, 7, usecase.UpdateAccountInput{
		ActorRole: entity.RoleAdminMaster,
		Username:  "renamed",
		Email:     target.Email,
		Role:      entity.RoleAdminMaster,
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", out.Account.Username)
}

func TestAuthService_UpdateAccount_RehashesNewPassword(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()
	target := authorizedAccount()

	fixtures.accountRepo.On("FindByID", ctx, int64(7)).Return(target, nil)
	fixtures.hasher.On("Hash", "NewPassword123!").Return("rehashed", nil)
	fixtures.accountRepo.On("Update", ctx, mock.MatchedBy(func(a *entity.Account) bool {
		return a.PasswordHash == "rehashed"
	})).Return(nil)

	_, err := fixtures.service.UpdateAccount(ctx, 7, usecase.UpdateAccountInput{
		ActorRole: entity.RoleEditorAdmin,
		Username:  target.Username,
		Email:     target.Email,
		Password:  "NewPassword123!",
		Role:      target.Role,
	})
	require.NoError(t, err)
}

func TestAuthService_DeleteAccount_NotFound(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.accountRepo.On("Delete", ctx, int64(99)).Return(repository.ErrAccountNotFound)

	err := fixtures.service.DeleteAccount(ctx, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAuthService_ListAccounts(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()
	stored := []*entity.Account{authorizedAccount()}

	fixtures.accountRepo.On("ListAll", ctx).Return(stored, nil)

	accounts, err := fixtures.service.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, accounts)
}

func TestAuthService_EnsureBootstrapAdmin_CreatesWhenMissing(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.accountRepo.On("FindByEmail", ctx, "root@example.com").Return(nil, repository.ErrAccountNotFound)
	fixtures.hasher.On("Hash", "BootstrapPass123!").Return("admin-hash", nil)
	fixtures.accountRepo.On("Create", ctx, mock.MatchedBy(func(a *entity.Account) bool {
		return a.Email == "root@example.com" &&
			a.Role == entity.RoleAdminMaster &&
			a.IsAuthorized
	})).Return(nil)

	require.NoError(t, fixtures.service.EnsureBootstrapAdmin(ctx))
}

func TestAuthService_EnsureBootstrapAdmin_IdempotentWhenPresent(t *testing.T) {
	fixtures := createTestAuthService(t)
	ctx := context.Background()
	existing := authorizedAccount()
	existing.Email = "root@example.com"
	existing.Role = entity.RoleAdminMaster

	fixtures.accountRepo.On("FindByEmail", ctx, "root@example.com").Return(existing, nil)

	require.NoError(t, fixtures.service.EnsureBootstrapAdmin(ctx))
}
