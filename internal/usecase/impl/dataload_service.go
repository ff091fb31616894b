package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"userregistry/config"
	deliverycontext "userregistry/internal/delivery/context"
	domainerrors "userregistry/internal/domain/errors"
	"userregistry/internal/domain/repository"
	"userregistry/internal/infra/reference/loader"
	"userregistry/internal/usecase"
)

// dataLoadService implements the DataLoadUsecase interface.
type dataLoadService struct {
	txManager repository.TransactionManager
	dataDir   string
	logger    *slog.Logger
}

// DataLoadServiceParams holds dependencies for dataLoadService, injected by Fx.
type DataLoadServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewDataLoadService is the constructor for dataLoadService.
func NewDataLoadService(params DataLoadServiceParams) usecase.DataLoadUsecase {
	dataDir := ""
	if params.Config != nil && params.Config.ReferenceData != nil {
		dataDir = params.Config.ReferenceData.Dir
	}

	return &dataLoadService{
		txManager: params.TxManager,
		dataDir:   dataDir,
		logger:    params.Logger,
	}
}

func (srv *dataLoadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoadGeography reads the CSV files and upserts all three reference tables
// inside one transaction, so a half-read file never leaves a partial load.
func (srv *dataLoadService) LoadGeography(ctx context.Context) (*usecase.DataLoadOutput, error) {
	if srv.dataDir == "" {
		return nil, domainerrors.ErrInternalError.WrapMessage("reference data directory is not configured")
	}

	data, err := loader.NewCSVLoader(srv.dataDir).Load()
	if err != nil {
		srv.log(ctx).Error("Failed to read reference CSV files", slog.String("dir", srv.dataDir), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to read reference data")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		geographyRepo := repoFactory.NewGeographyRepository()

		if err := geographyRepo.ReplaceCountries(ctx, data.Countries); err != nil {
			return err
		}
		if err := geographyRepo.ReplaceDepartments(ctx, data.Departments); err != nil {
			return err
		}

		return geographyRepo.ReplaceMunicipalities(ctx, data.Municipalities)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store reference data")
	}

	output := &usecase.DataLoadOutput{
		Countries:      len(data.Countries),
		Departments:    len(data.Departments),
		Municipalities: len(data.Municipalities),
	}

	srv.log(ctx).Info("Reference data loaded",
		slog.Int("countries", output.Countries),
		slog.Int("departments", output.Departments),
		slog.Int("municipalities", output.Municipalities))

	return output, nil
}
