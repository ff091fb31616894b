package usecase

import (
	"context"

	"userregistry/internal/domain/entity"
)

// GeographyUsecase exposes the loaded geographic reference tables for
// read access. The tables are populated by DataLoadUsecase.
type GeographyUsecase interface {
	// ListCountries returns all loaded countries.
	ListCountries(ctx context.Context) ([]*entity.Country, error)
	// ListDepartments returns all loaded departments.
	ListDepartments(ctx context.Context) ([]*entity.Department, error)
	// ListMunicipalities returns all loaded municipalities.
	ListMunicipalities(ctx context.Context) ([]*entity.Municipality, error)
}
