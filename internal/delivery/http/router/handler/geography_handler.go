package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"userregistry/internal/delivery/http/response"
	"userregistry/internal/domain/entity"
	"userregistry/internal/usecase"
)

// CountryResponse is the outward country representation.
type CountryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DepartmentResponse is the outward department representation.
type DepartmentResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CountryID int64  `json:"countryId"`
}

// MunicipalityResponse is the outward municipality representation.
type MunicipalityResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DepartmentID int64  `json:"departmentId"`
}

// GeographyHandler serves read access to the geographic reference tables.
type GeographyHandler struct {
	uc usecase.GeographyUsecase
}

// NewGeographyHandler is the constructor for GeographyHandler, injected by Fx.
func NewGeographyHandler(uc usecase.GeographyUsecase) *GeographyHandler {
	return &GeographyHandler{uc: uc}
}

// ListCountries returns all loaded countries.
func (h *GeographyHandler) ListCountries(c echo.Context) error {
	countries, err := h.uc.ListCountries(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*CountryResponse, 0, len(countries))
	for _, country := range countries {
		items = append(items, &CountryResponse{ID: country.ID, Name: country.Name})
	}

	return response.Success(c, http.StatusOK, items, "")
}

// ListDepartments returns all loaded departments.
func (h *GeographyHandler) ListDepartments(c echo.Context) error {
	departments, err := h.uc.ListDepartments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*DepartmentResponse, 0, len(departments))
	for _, department := range departments {
		items = append(items, newDepartmentResponse(department))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// ListMunicipalities returns all loaded municipalities.
func (h *GeographyHandler) ListMunicipalities(c echo.Context) error {
	municipalities, err := h.uc.ListMunicipalities(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*MunicipalityResponse, 0, len(municipalities))
	for _, municipality := range municipalities {
		items = append(items, newMunicipalityResponse(municipality))
	}

	return response.Success(c, http.StatusOK, items, "")
}

func newDepartmentResponse(department *entity.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:        department.ID,
		Name:      department.Name,
		CountryID: department.CountryID,
	}
}

func newMunicipalityResponse(municipality *entity.Municipality) *MunicipalityResponse {
	return &MunicipalityResponse{
		ID:           municipality.ID,
		Name:         municipality.Name,
		DepartmentID: municipality.DepartmentID,
	}
}
