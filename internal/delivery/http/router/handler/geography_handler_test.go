package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"userregistry/internal/domain/entity"
)

type mockGeographyUsecase struct {
	mock.Mock
}

func newMockGeographyUsecase(t *testing.T) *mockGeographyUsecase {
	m := &mockGeographyUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockGeographyUsecase) ListCountries(ctx context.Context) ([]*entity.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Country), args.Error(1)
}

func (m *mockGeographyUsecase) ListDepartments(ctx context.Context) ([]*entity.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Department), args.Error(1)
}

func (m *mockGeographyUsecase) ListMunicipalities(ctx context.Context) ([]*entity.Municipality, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Municipality), args.Error(1)
}

func TestGeographyHandler_ListCountries(t *testing.T) {
	uc := newMockGeographyUsecase(t)
	uc.On("ListCountries", mock.Anything).Return([]*entity.Country{
		{ID: 1, Name: "Colombia"},
		{ID: 2, Name: "Panama"},
	}, nil)

	e := newHandlerTestServer(t)
	c, rec := newJSONContext(e, http.MethodGet, "/countries", "")

	h := NewGeographyHandler(uc)
	require.NoError(t, h.ListCountries(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Colombia"`)
	assert.Contains(t, rec.Body.String(), `"name":"Panama"`)
}

func TestGeographyHandler_ListDepartments(t *testing.T) {
	uc := newMockGeographyUsecase(t)
	uc.On("ListDepartments", mock.Anything).Return([]*entity.Department{
		{ID: 10, Name: "Antioquia", CountryID: 1},
	}, nil)

	e := newHandlerTestServer(t)
	c, rec := newJSONContext(e, http.MethodGet, "/departments", "")

	h := NewGeographyHandler(uc)
	require.NoError(t, h.ListDepartments(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"countryId":1`)
}

func TestGeographyHandler_ListMunicipalities_Empty(t *testing.T) {
	uc := newMockGeographyUsecase(t)
	uc.On("ListMunicipalities", mock.Anything).Return([]*entity.Municipality{}, nil)

	e := newHandlerTestServer(t)
	c, rec := newJSONContext(e, http.MethodGet, "/municipalities", "")

	h := NewGeographyHandler(uc)
	require.NoError(t, h.ListMunicipalities(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestGeographyHandler_ListCountries_UsecaseFailure(t *testing.T) {
	uc := newMockGeographyUsecase(t)
	uc.On("ListCountries", mock.Anything).Return(nil, assert.AnError)

	e := newHandlerTestServer(t)
	c, rec := newJSONContext(e, http.MethodGet, "/countries", "")

	h := NewGeographyHandler(uc)
	err := h.ListCountries(c)
	require.Error(t, err)
	e.HTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
