// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"userregistry/internal/domain/entity"
)

// MockAccountRepository mocks repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.Account, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockAccountRepository) ListAll(ctx context.Context) ([]*entity.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Account), args.Error(1)
}

// MockRegistrantRepository mocks repository.RegistrantRepository.
type MockRegistrantRepository struct {
	mock.Mock
}

func NewMockRegistrantRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRegistrantRepository {
	m := &MockRegistrantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRegistrantRepository) Create(ctx context.Context, registrant *entity.Registrant) error {
	args := m.Called(ctx, registrant)

	return args.Error(0)
}

func (m *MockRegistrantRepository) FindByID(ctx context.Context, id int64) (*entity.Registrant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Registrant), args.Error(1)
}

func (m *MockRegistrantRepository) Update(ctx context.Context, registrant *entity.Registrant) error {
	args := m.Called(ctx, registrant)

	return args.Error(0)
}

func (m *MockRegistrantRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockRegistrantRepository) ListAll(ctx context.Context) ([]*entity.Registrant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Registrant), args.Error(1)
}

// MockGeographyRepository mocks repository.GeographyRepository.
type MockGeographyRepository struct {
	mock.Mock
}

func NewMockGeographyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGeographyRepository {
	m := &MockGeographyRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockGeographyRepository) CountryExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *MockGeographyRepository) DepartmentExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *MockGeographyRepository) MunicipalityExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *MockGeographyRepository) ReplaceCountries(ctx context.Context, countries []*entity.Country) error {
	args := m.Called(ctx, countries)

	return args.Error(0)
}

func (m *MockGeographyRepository) ReplaceDepartments(ctx context.Context, departments []*entity.Department) error {
	args := m.Called(ctx, departments)

	return args.Error(0)
}

func (m *MockGeographyRepository) ReplaceMunicipalities(ctx context.Context, municipalities []*entity.Municipality) error {
	args := m.Called(ctx, municipalities)

	return args.Error(0)
}

func (m *MockGeographyRepository) ListCountries(ctx context.Context) ([]*entity.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Country), args.Error(1)
}

func (m *MockGeographyRepository) ListDepartments(ctx context.Context) ([]*entity.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Department), args.Error(1)
}

func (m *MockGeographyRepository) ListMunicipalities(ctx context.Context) ([]*entity.Municipality, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Municipality), args.Error(1)
}
