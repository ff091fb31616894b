package repository

import (
	"context"

	"userregistry/internal/domain/entity"
)

// GeographyRepository persists the geographic reference tables and answers
// the existence checks registrant validation needs.
type GeographyRepository interface {
	// CountryExists reports whether a country with the given ID is stored.
	CountryExists(ctx context.Context, id int64) (bool, error)
	// DepartmentExists reports whether a department with the given ID is stored.
	DepartmentExists(ctx context.Context, id int64) (bool, error)
	// MunicipalityExists reports whether a municipality with the given ID is stored.
	MunicipalityExists(ctx context.Context, id int64) (bool, error)

	// ReplaceCountries loads the given rows, upserting by primary key so
	// re-running a load is idempotent.
	ReplaceCountries(ctx context.Context, countries []*entity.Country) error
	// ReplaceDepartments loads the given rows, upserting by primary key.
	ReplaceDepartments(ctx context.Context, departments []*entity.Department) error
	// ReplaceMunicipalities loads the given rows, upserting by primary key.
	ReplaceMunicipalities(ctx context.Context, municipalities []*entity.Municipality) error

	// ListCountries returns all stored countries ordered by id.
	ListCountries(ctx context.Context) ([]*entity.Country, error)
	// ListDepartments returns all stored departments ordered by id.
	ListDepartments(ctx context.Context) ([]*entity.Department, error)
	// ListMunicipalities returns all stored municipalities ordered by id.
	ListMunicipalities(ctx context.Context) ([]*entity.Municipality, error)
}
