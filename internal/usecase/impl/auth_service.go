// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"userregistry/config"
	deliverycontext "userregistry/internal/delivery/context"
	"userregistry/internal/domain/entity"
	domainerrors "userregistry/internal/domain/errors"
	"userregistry/internal/domain/repository"
	"userregistry/internal/domain/service"
	"userregistry/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	accountRepo      repository.AccountRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	identityVerifier service.IdentityVerifier
	bootstrapAdmin   *config.BootstrapAdminConfig
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AccountRepo      repository.AccountRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	IdentityVerifier service.IdentityVerifier
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var bootstrapAdmin *config.BootstrapAdminConfig
	if params.Config != nil {
		bootstrapAdmin = params.Config.BootstrapAdmin
	}

	return &authService{
		txManager:        params.TxManager,
		accountRepo:      params.AccountRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		identityVerifier: params.IdentityVerifier,
		bootstrapAdmin:   bootstrapAdmin,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates a local account and issues a bearer token.
// Unknown email, wrong password and a pending account all surface the same
// invalid-credentials outcome; the wrapped messages stay distinct for the logs.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.TokenOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login for unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login password mismatch", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	if !account.CanLogin() {
		srv.log(ctx).Warn("Login against unapproved account", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("authorization pending")
	}

	token, err := srv.tokenService.Issue(account)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("email", account.Email), slog.String("role", account.Role.String()))

	return &usecase.TokenOutput{Token: token, Account: account}, nil
}

// GoogleLogin authenticates through a Google ID token. The first sight of a
// subject registers an unauthorized Viewer account and reports approval
// pending; only an approved account receives a token.
func (srv *authService) GoogleLogin(ctx context.Context, input usecase.GoogleLoginInput) (*usecase.TokenOutput, error) {
	identity, err := srv.identityVerifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		if errors.Is(err, domainerrors.ErrIdentityProviderUnavailable) {
			return nil, err
		}
		srv.log(ctx).Warn("Google token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrGoogleTokenInvalid.WrapMessage(err.Error())
	}

	account, err := srv.accountRepo.FindByGoogleID(ctx, identity.Subject)
	if err != nil {
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(err, "failed to load account for google login")
		}

		if err := srv.registerGoogleAccount(ctx, identity); err != nil {
			return nil, err
		}

		srv.log(ctx).Info("Google account registered, approval pending", slog.String("email", identity.Email))

		return nil, domainerrors.ErrApprovalPending.WrapMessage("first google login")
	}

	if !account.CanLogin() {
		srv.log(ctx).Info("Google login against unapproved account", slog.String("email", account.Email))

		return nil, domainerrors.ErrApprovalPending.WrapMessage("google account awaiting approval")
	}

	token, err := srv.tokenService.Issue(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Google login succeeded", slog.String("email", account.Email), slog.String("role", account.Role.String()))

	return &usecase.TokenOutput{Token: token, Account: account}, nil
}

// registerGoogleAccount creates the unauthorized Viewer placeholder for a
// never-seen Google identity. The transaction re-checks the subject so two
// concurrent first logins cannot create duplicates.
func (srv *authService) registerGoogleAccount(ctx context.Context, identity *service.ExternalIdentity) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		if _, err := accountRepo.FindByGoogleID(ctx, identity.Subject); err == nil {
			// Lost the race; the account exists now and stays pending.
			return nil
		} else if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to re-check google subject")
		}

		username := identity.DisplayName
		if username == "" {
			username = identity.Email
		}

		newAccount := &entity.Account{
			Username:     username,
			Email:        identity.Email,
			Role:         entity.RoleViewer,
			IsGoogleAuth: true,
			GoogleID:     identity.Subject,
			IsAuthorized: false,
		}
		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return errors.Wrap(err, "failed to register google account")
		}

		return nil
	})
}

// CreateAccount creates a pre-authorized account with an explicit role.
func (srv *authService) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*usecase.AccountOutput, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrInvalidRole.WrapMessage("create account")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	newAccount := &entity.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		IsAuthorized: true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		_, err := accountRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("create account")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		return accountRepo.Create(ctx, newAccount)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account created",
		slog.String("email", newAccount.Email),
		slog.String("role", newAccount.Role.String()))

	return &usecase.AccountOutput{Account: newAccount}, nil
}

// ListAccounts returns all stored accounts.
func (srv *authService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// UpdateAccount mutates the given account's fields. Only AdminMaster may
// touch an account whose current role is AdminMaster.
func (srv *authService) UpdateAccount(ctx context.Context, id int64, input usecase.UpdateAccountInput) (*usecase.AccountOutput, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrInvalidRole.WrapMessage("update account")
	}

	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("update account")
			}

			return errors.Wrap(err, "failed to load account for update")
		}

		if account.Role == entity.RoleAdminMaster && input.ActorRole != entity.RoleAdminMaster {
			return domainerrors.ErrForbidden.WrapMessage("only AdminMaster may modify an AdminMaster account")
		}

		account.Username = input.Username
		account.Email = input.Email
		account.Role = input.Role
		if input.Password != "" {
			hash, err := srv.hasher.Hash(input.Password)
			if err != nil {
				return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
			}
			account.PasswordHash = hash
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account")
		}
		updated = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account updated", slog.Int64("id", id), slog.String("role", updated.Role.String()))

	return &usecase.AccountOutput{Account: updated}, nil
}

// DeleteAccount removes the given account.
func (srv *authService) DeleteAccount(ctx context.Context, id int64) error {
	if err := srv.accountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("delete account")
		}

		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.Int64("id", id))

	return nil
}

// ApproveAccount flips the authorization gate for a pending account.
// Approving an already-authorized account is reported as an error, not a no-op.
func (srv *authService) ApproveAccount(ctx context.Context, id int64) (*usecase.AccountOutput, error) {
	var approved *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("approve account")
			}

			return errors.Wrap(err, "failed to load account for approval")
		}

		if account.IsAuthorized {
			return domainerrors.ErrAlreadyAuthorized.WrapMessage("approve account")
		}

		account.IsAuthorized = true
		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to approve account")
		}
		approved = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account approved", slog.Int64("id", id), slog.String("email", approved.Email))

	return &usecase.AccountOutput{Account: approved}, nil
}

// ChangeRole assigns a new role to the given account. Approval state is
// untouched; a role change never sends an account back through the gate.
func (srv *authService) ChangeRole(ctx context.Context, id int64, role entity.Role) (*usecase.AccountOutput, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole.WrapMessage("change role")
	}

	var changed *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("change role")
			}

			return errors.Wrap(err, "failed to load account for role change")
		}

		account.Role = role
		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to change role")
		}
		changed = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Role changed", slog.Int64("id", id), slog.String("role", role.String()))

	return &usecase.AccountOutput{Account: changed}, nil
}

// EnsureBootstrapAdmin seeds the configured AdminMaster account if no account
// with that email exists yet. The seeded account skips the approval gate.
func (srv *authService) EnsureBootstrapAdmin(ctx context.Context) error {
	if srv.bootstrapAdmin == nil {
		return errors.New("bootstrap admin is not configured")
	}

	_, err := srv.accountRepo.FindByEmail(ctx, srv.bootstrapAdmin.Email)
	if err == nil {
		srv.log(ctx).Debug("Bootstrap admin already present", slog.String("email", srv.bootstrapAdmin.Email))

		return nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check bootstrap admin")
	}

	hash, err := srv.hasher.Hash(srv.bootstrapAdmin.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash bootstrap admin password")
	}

	admin := &entity.Account{
		Username:     srv.bootstrapAdmin.Username,
		Email:        srv.bootstrapAdmin.Email,
		PasswordHash: hash,
		Role:         entity.RoleAdminMaster,
		IsAuthorized: true,
	}
	if err := srv.accountRepo.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to create bootstrap admin")
	}

	srv.log(ctx).Info("Bootstrap admin created", slog.String("email", admin.Email))

	return nil
}
