package handler

import (
	"net/http"

	"flora/internal/delivery/http/response"
	"flora/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StrainHandler holds dependencies for strain catalog handlers.
type StrainHandler struct {
	uc usecase.StrainUsecase
}

// NewStrainHandler is the constructor for StrainHandler, injected by Fx.
func NewStrainHandler(uc usecase.StrainUsecase) *StrainHandler {
	return &StrainHandler{uc: uc}
}

type strainRequest struct {
	Name           string `json:"name" validate:"required"`
	ParentGenetics string `json:"parentGenetics"`
	Dominance      string `json:"dominance"`
	AromaFlavor    string `json:"aromaFlavor"`
	THC            string `json:"thc"`
	CBD            string `json:"cbd"`
	Detail         string `json:"detail"`
}

func (r strainRequest) toInput() usecase.StrainInput {
	return usecase.StrainInput{
		Name:           r.Name,
		ParentGenetics: r.ParentGenetics,
		Dominance:      r.Dominance,
		AromaFlavor:    r.AromaFlavor,
		THC:            r.THC,
		CBD:            r.CBD,
		Detail:         r.Detail,
	}
}

// Create records a new strain.
func (h *StrainHandler) Create(c echo.Context) error {
	var input strainRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid strain input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	strain, err := h.uc.Create(c.Request().Context(), input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toStrainResponse(strain), "Strain created successfully")
}

// Get returns one strain.
func (h *StrainHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	strain, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStrainResponse(strain), "")
}

// List returns the strains the caller may read.
func (h *StrainHandler) List(c echo.Context) error {
	strains, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStrainResponses(strains), "")
}

// Search returns readable strains whose name contains the query fragment.
func (h *StrainHandler) Search(c echo.Context) error {
	strains, err := h.uc.SearchByName(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStrainResponses(strains), "")
}

// Update modifies a strain.
func (h *StrainHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input strainRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid strain input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	strain, err := h.uc.Update(c.Request().Context(), id, input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStrainResponse(strain), "Strain updated successfully")
}

// Delete removes a strain.
func (h *StrainHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Strain deleted successfully")
}
