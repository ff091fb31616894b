package impl

import (
	"context"
	"io"
	"log/slog"

	"userregistry/config"
	"userregistry/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newServiceTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 12},
		BootstrapAdmin: &config.BootstrapAdminConfig{
			Email:    "root@example.com",
			Username: "root",
			Password: "BootstrapPass123!",
		},
		ReferenceData: &config.ReferenceDataConfig{Dir: "testdata"},
	}

	return cfg
}

// stubTxManager runs the transactional callback directly against a fixed
// factory, without any database underneath.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (s *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s.factory)
}

// stubRepositoryFactory hands out the repositories the test wired in.
type stubRepositoryFactory struct {
	accountRepo    repository.AccountRepository
	registrantRepo repository.RegistrantRepository
	geographyRepo  repository.GeographyRepository
}

func (s *stubRepositoryFactory) NewAccountRepository() repository.AccountRepository {
	return s.accountRepo
}

func (s *stubRepositoryFactory) NewRegistrantRepository() repository.RegistrantRepository {
	return s.registrantRepo
}

func (s *stubRepositoryFactory) NewGeographyRepository() repository.GeographyRepository {
	return s.geographyRepo
}
