package repository

import (
	"context"

	"userregistry/internal/domain/entity"
	"userregistry/internal/errors"
)

// ErrRegistrantNotFound is returned when no registrant matches the lookup key.
var ErrRegistrantNotFound = errors.New("registrant not found")

// RegistrantRepository persists registry records.
type RegistrantRepository interface {
	// Create stores a new registrant and fills in its generated ID.
	Create(ctx context.Context, registrant *entity.Registrant) error
	// FindByID retrieves a registrant by its surrogate key.
	// Returns ErrRegistrantNotFound if no such registrant exists.
	FindByID(ctx context.Context, id int64) (*entity.Registrant, error)
	// Update persists changes to an existing registrant.
	Update(ctx context.Context, registrant *entity.Registrant) error
	// Delete removes the registrant with the given ID.
	// Returns ErrRegistrantNotFound if no such registrant exists.
	Delete(ctx context.Context, id int64) error
	// ListAll returns every stored registrant ordered by ID.
	ListAll(ctx context.Context) ([]*entity.Registrant, error)
}
