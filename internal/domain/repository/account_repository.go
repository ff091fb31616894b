// Package repository defines the persistence contracts of the domain.
// Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"userregistry/internal/domain/entity"
	"userregistry/internal/errors"
)

// Sentinel errors for account lookups.
var (
	// ErrAccountNotFound is returned when no account matches the lookup key.
	ErrAccountNotFound = errors.New("account not found")
)

// AccountRepository persists authentication accounts.
type AccountRepository interface {
	// Create stores a new account and fills in its generated ID.
	Create(ctx context.Context, account *entity.Account) error
	// FindByID retrieves an account by its surrogate key.
	// Returns ErrAccountNotFound if no such account exists.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)
	// FindByEmail retrieves an account by its email address.
	// Returns ErrAccountNotFound if no such account exists.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	// FindByGoogleID retrieves an account by its Google subject identifier.
	// Returns ErrAccountNotFound if no such account exists.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.Account, error)
	// Update persists changes to an existing account.
	Update(ctx context.Context, account *entity.Account) error
	// Delete removes the account with the given ID.
	// Returns ErrAccountNotFound if no such account exists.
	Delete(ctx context.Context, id int64) error
	// ListAll returns every stored account ordered by ID.
	ListAll(ctx context.Context) ([]*entity.Account, error)
}
