package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"userregistry/internal/delivery/http/response"
	"userregistry/internal/usecase"
)

// DataLoadResponse reports the row counts of a reference load.
type DataLoadResponse struct {
	Countries      int `json:"countries"`
	Departments    int `json:"departments"`
	Municipalities int `json:"municipalities"`
}

// DataLoadHandler holds dependencies for the reference data loader endpoint.
type DataLoadHandler struct {
	uc usecase.DataLoadUsecase
}

// NewDataLoadHandler is the constructor for DataLoadHandler, injected by Fx.
func NewDataLoadHandler(uc usecase.DataLoadUsecase) *DataLoadHandler {
	return &DataLoadHandler{uc: uc}
}

// Load reads the CSV reference files into the database.
func (h *DataLoadHandler) Load(c echo.Context) error {
	output, err := h.uc.LoadGeography(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, DataLoadResponse{
		Countries:      output.Countries,
		Departments:    output.Departments,
		Municipalities: output.Municipalities,
	}, "Reference data loaded")
}
