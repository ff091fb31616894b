package impl

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"userregistry/internal/domain/entity"
	"userregistry/internal/domain/repository"
	"userregistry/internal/usecase"
)

// geographyService implements the GeographyUsecase interface.
type geographyService struct {
	geographyRepo repository.GeographyRepository
}

// GeographyServiceParams holds dependencies for geographyService, injected by Fx.
type GeographyServiceParams struct {
	fx.In

	GeographyRepo repository.GeographyRepository
}

// NewGeographyService is the constructor for geographyService.
func NewGeographyService(params GeographyServiceParams) usecase.GeographyUsecase {
	return &geographyService{geographyRepo: params.GeographyRepo}
}

// ListCountries returns all loaded countries.
func (srv *geographyService) ListCountries(ctx context.Context) ([]*entity.Country, error) {
	countries, err := srv.geographyRepo.ListCountries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	return countries, nil
}

// ListDepartments returns all loaded departments.
func (srv *geographyService) ListDepartments(ctx context.Context) ([]*entity.Department, error) {
	departments, err := srv.geographyRepo.ListDepartments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list departments")
	}

	return departments, nil
}

// ListMunicipalities returns all loaded municipalities.
func (srv *geographyService) ListMunicipalities(ctx context.Context) ([]*entity.Municipality, error) {
	municipalities, err := srv.geographyRepo.ListMunicipalities(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list municipalities")
	}

	return municipalities, nil
}
