package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"userregistry/internal/delivery/http/response"
	"userregistry/internal/domain/entity"
	"userregistry/internal/usecase"
)

// RegistrantRequest is the create/update payload for registry records.
type RegistrantRequest struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Address        string `json:"address"`
	CountryID      int64  `json:"countryId" validate:"required,gt=0"`
	DepartmentID   int64  `json:"departmentId" validate:"required,gt=0"`
	MunicipalityID int64  `json:"municipalityId" validate:"required,gt=0"`
}

// RegistrantResponse is the outward registrant representation.
type RegistrantResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	CountryID      int64     `json:"countryId"`
	DepartmentID   int64     `json:"departmentId"`
	MunicipalityID int64     `json:"municipalityId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func newRegistrantResponse(registrant *entity.Registrant) *RegistrantResponse {
	return &RegistrantResponse{
		ID:             registrant.ID,
		Name:           registrant.Name,
		Phone:          registrant.Phone,
		Address:        registrant.Address,
		CountryID:      registrant.CountryID,
		DepartmentID:   registrant.DepartmentID,
		MunicipalityID: registrant.MunicipalityID,
		CreatedAt:      registrant.CreatedAt,
		UpdatedAt:      registrant.UpdatedAt,
	}
}

// RegistrantHandler holds dependencies for registry record handlers.
type RegistrantHandler struct {
	uc usecase.RegistrantUsecase
}

// NewRegistrantHandler is the constructor for RegistrantHandler, injected by Fx.
func NewRegistrantHandler(uc usecase.RegistrantUsecase) *RegistrantHandler {
	return &RegistrantHandler{uc: uc}
}

func (h *RegistrantHandler) bindInput(c echo.Context) (usecase.RegistrantInput, error) {
	var input RegistrantRequest
	if err := c.Bind(&input); err != nil {
		return usecase.RegistrantInput{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid registrant input")
	}
	if err := c.Validate(&input); err != nil {
		return usecase.RegistrantInput{}, err
	}

	return usecase.RegistrantInput{
		Name:           input.Name,
		Phone:          input.Phone,
		Address:        input.Address,
		CountryID:      input.CountryID,
		DepartmentID:   input.DepartmentID,
		MunicipalityID: input.MunicipalityID,
	}, nil
}

// Create handles the registrant creation request.
func (h *RegistrantHandler) Create(c echo.Context) error {
	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	output, err := h.uc.CreateRegistrant(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newRegistrantResponse(output.Registrant), "Registrant created")
}

// Get returns a single registrant.
func (h *RegistrantHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetRegistrant(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRegistrantResponse(output.Registrant), "")
}

// List returns all registrants.
func (h *RegistrantHandler) List(c echo.Context) error {
	registrants, err := h.uc.ListRegistrants(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*RegistrantResponse, 0, len(registrants))
	for _, registrant := range registrants {
		items = append(items, newRegistrantResponse(registrant))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Update handles the registrant update request.
func (h *RegistrantHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	output, err := h.uc.UpdateRegistrant(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRegistrantResponse(output.Registrant), "Registrant updated")
}

// Delete handles the registrant deletion request.
func (h *RegistrantHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteRegistrant(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Registrant deleted")
}
