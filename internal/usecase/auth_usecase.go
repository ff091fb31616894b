// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"userregistry/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a local login.
type LoginInput struct {
	Email    string
	Password string
}

// GoogleLoginInput carries the raw ID token obtained from Google Sign-In.
type GoogleLoginInput struct {
	IDToken string
}

// CreateAccountInput defines the data required to create an account with a role.
type CreateAccountInput struct {
	Username string
	Email    string
	Password string
	Role     entity.Role
}

// UpdateAccountInput defines the mutable fields of an account.
// ActorRole is the role of the caller performing the update; it decides
// whether an AdminMaster target may be touched.
type UpdateAccountInput struct {
	ActorRole entity.Role
	Username  string
	Email     string
	Password  string // Empty keeps the stored hash.
	Role      entity.Role
}

// --- Output DTOs ---

// TokenOutput returns the issued bearer token after a successful login.
type TokenOutput struct {
	Token   string
	Account *entity.Account
}

// AccountOutput returns an account's stored state.
type AccountOutput struct {
	Account *entity.Account
}

// AuthUsecase defines the interface for authentication and account
// administration operations. This is the contract the delivery layer
// (API handlers) depends on.
type AuthUsecase interface {
	// Login authenticates a local account and issues a bearer token.
	Login(ctx context.Context, input LoginInput) (*TokenOutput, error)
	// GoogleLogin authenticates through a Google ID token. A never-seen
	// identity creates an unauthorized Viewer account and fails with an
	// approval-pending outcome instead of a token.
	GoogleLogin(ctx context.Context, input GoogleLoginInput) (*TokenOutput, error)
	// CreateAccount creates a pre-authorized account with an explicit role.
	CreateAccount(ctx context.Context, input CreateAccountInput) (*AccountOutput, error)
	// ListAccounts returns all stored accounts.
	ListAccounts(ctx context.Context) ([]*entity.Account, error)
	// UpdateAccount mutates the given account's fields.
	UpdateAccount(ctx context.Context, id int64, input UpdateAccountInput) (*AccountOutput, error)
	// DeleteAccount removes the given account.
	DeleteAccount(ctx context.Context, id int64) error
	// ApproveAccount flips the authorization gate for a pending account.
	ApproveAccount(ctx context.Context, id int64) (*AccountOutput, error)
	// ChangeRole assigns a new role to the given account.
	ChangeRole(ctx context.Context, id int64, role entity.Role) (*AccountOutput, error)
	// EnsureBootstrapAdmin seeds the configured AdminMaster account if it
	// does not exist yet. Called once at process start.
	EnsureBootstrapAdmin(ctx context.Context) error
}
