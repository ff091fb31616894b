package usecase

import (
	"context"

	"userregistry/internal/domain/entity"
)

// RegistrantInput defines the data required to create or update a registrant.
// The three reference ids are validated against the loaded geography tables.
type RegistrantInput struct {
	Name           string
	Phone          string
	Address        string
	CountryID      int64
	DepartmentID   int64
	MunicipalityID int64
}

// RegistrantOutput returns a registrant's stored state.
type RegistrantOutput struct {
	Registrant *entity.Registrant
}

// RegistrantUsecase defines the interface for registry record operations.
type RegistrantUsecase interface {
	// CreateRegistrant validates the geographic references and stores a new record.
	CreateRegistrant(ctx context.Context, input RegistrantInput) (*RegistrantOutput, error)
	// GetRegistrant returns a single record by id.
	GetRegistrant(ctx context.Context, id int64) (*RegistrantOutput, error)
	// ListRegistrants returns all stored records.
	ListRegistrants(ctx context.Context) ([]*entity.Registrant, error)
	// UpdateRegistrant validates the geographic references and mutates a record.
	UpdateRegistrant(ctx context.Context, id int64, input RegistrantInput) (*RegistrantOutput, error)
	// DeleteRegistrant removes a record.
	DeleteRegistrant(ctx context.Context, id int64) error
}
