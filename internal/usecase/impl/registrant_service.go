package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "userregistry/internal/delivery/context"
	"userregistry/internal/domain/entity"
	domainerrors "userregistry/internal/domain/errors"
	"userregistry/internal/domain/repository"
	"userregistry/internal/usecase"
)

// registrantService implements the RegistrantUsecase interface.
type registrantService struct {
	txManager      repository.TransactionManager
	registrantRepo repository.RegistrantRepository
	geographyRepo  repository.GeographyRepository
	logger         *slog.Logger
}

// RegistrantServiceParams holds dependencies for registrantService, injected by Fx.
type RegistrantServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RegistrantRepo repository.RegistrantRepository
	GeographyRepo  repository.GeographyRepository
	Logger         *slog.Logger
}

// NewRegistrantService is the constructor for registrantService.
func NewRegistrantService(params RegistrantServiceParams) usecase.RegistrantUsecase {
	return &registrantService{
		txManager:      params.TxManager,
		registrantRepo: params.RegistrantRepo,
		geographyRepo:  params.GeographyRepo,
		logger:         params.Logger,
	}
}

func (srv *registrantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validateGeography rejects references that do not exist in the loaded tables.
func (srv *registrantService) validateGeography(ctx context.Context, geographyRepo repository.GeographyRepository, input usecase.RegistrantInput) error {
	exists, err := geographyRepo.CountryExists(ctx, input.CountryID)
	if err != nil {
		return errors.Wrap(err, "failed to check country reference")
	}
	if !exists {
		return domainerrors.ErrUnknownCountry.WrapMessage("registrant validation")
	}

	exists, err = geographyRepo.DepartmentExists(ctx, input.DepartmentID)
	if err != nil {
		return errors.Wrap(err, "failed to check department reference")
	}
	if !exists {
		return domainerrors.ErrUnknownDepartment.WrapMessage("registrant validation")
	}

	exists, err = geographyRepo.MunicipalityExists(ctx, input.MunicipalityID)
	if err != nil {
		return errors.Wrap(err, "failed to check municipality reference")
	}
	if !exists {
		return domainerrors.ErrUnknownMunicipality.WrapMessage("registrant validation")
	}

	return nil
}

// CreateRegistrant validates the geographic references and stores a new record.
func (srv *registrantService) CreateRegistrant(ctx context.Context, input usecase.RegistrantInput) (*usecase.RegistrantOutput, error) {
	newRegistrant := &entity.Registrant{
		Name:           input.Name,
		Phone:          input.Phone,
		Address:        input.Address,
		CountryID:      input.CountryID,
		DepartmentID:   input.DepartmentID,
		MunicipalityID: input.MunicipalityID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.validateGeography(ctx, repoFactory.NewGeographyRepository(), input); err != nil {
			return err
		}

		return repoFactory.NewRegistrantRepository().Create(ctx, newRegistrant)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Registrant created", slog.Int64("id", newRegistrant.ID))

	return &usecase.RegistrantOutput{Registrant: newRegistrant}, nil
}

// GetRegistrant returns a single record by id.
func (srv *registrantService) GetRegistrant(ctx context.Context, id int64) (*usecase.RegistrantOutput, error) {
	registrant, err := srv.registrantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrantNotFound) {
			return nil, domainerrors.ErrRegistrantNotFound.WrapMessage("get registrant")
		}

		return nil, errors.Wrap(err, "failed to load registrant")
	}

	return &usecase.RegistrantOutput{Registrant: registrant}, nil
}

// ListRegistrants returns all stored records.
func (srv *registrantService) ListRegistrants(ctx context.Context) ([]*entity.Registrant, error) {
	registrants, err := srv.registrantRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list registrants")
	}

	return registrants, nil
}

// UpdateRegistrant validates the geographic references and mutates a record.
func (srv *registrantService) UpdateRegistrant(ctx context.Context, id int64, input usecase.RegistrantInput) (*usecase.RegistrantOutput, error) {
	var updated *entity.Registrant
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		registrantRepo := repoFactory.NewRegistrantRepository()

		registrant, err := registrantRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRegistrantNotFound) {
				return domainerrors.ErrRegistrantNotFound.WrapMessage("update registrant")
			}

			return errors.Wrap(err, "failed to load registrant for update")
		}

		if err := srv.validateGeography(ctx, repoFactory.NewGeographyRepository(), input); err != nil {
			return err
		}

		registrant.Name = input.Name
		registrant.Phone = input.Phone
		registrant.Address = input.Address
		registrant.CountryID = input.CountryID
		registrant.DepartmentID = input.DepartmentID
		registrant.MunicipalityID = input.MunicipalityID

		if err := registrantRepo.Update(ctx, registrant); err != nil {
			return errors.Wrap(err, "failed to update registrant")
		}
		updated = registrant

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Registrant updated", slog.Int64("id", id))

	return &usecase.RegistrantOutput{Registrant: updated}, nil
}

// DeleteRegistrant removes a record.
func (srv *registrantService) DeleteRegistrant(ctx context.Context, id int64) error {
	if err := srv.registrantRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRegistrantNotFound) {
			return domainerrors.ErrRegistrantNotFound.WrapMessage("delete registrant")
		}

		return errors.Wrap(err, "failed to delete registrant")
	}

	srv.log(ctx).Info("Registrant deleted", slog.Int64("id", id))

	return nil
}
