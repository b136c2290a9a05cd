package handler

import (
	"net/http"
	"time"

	"flora/internal/delivery/http/response"
	"flora/internal/domain/entity"
	"flora/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlantHandler holds dependencies for plant record handlers.
type PlantHandler struct {
	uc usecase.PlantUsecase
}

// NewPlantHandler is the constructor for PlantHandler, injected by Fx.
func NewPlantHandler(uc usecase.PlantUsecase) *PlantHandler {
	return &PlantHandler{uc: uc}
}

type plantRequest struct {
	Name       string     `json:"name" validate:"required"`
	Stage      string     `json:"stage"`
	RoomID     int64      `json:"roomId"`
	StrainID   int64      `json:"strainId"`
	Production int        `json:"production"`
	FinishedAt *time.Time `json:"finishedAt"`
	Location   string     `json:"location"`
	Public     bool       `json:"public"`
}

func (r plantRequest) toInput() usecase.PlantInput {
	return usecase.PlantInput{
		Name:       r.Name,
		Stage:      entity.Stage(r.Stage),
		RoomID:     r.RoomID,
		StrainID:   r.StrainID,
		Production: r.Production,
		FinishedAt: r.FinishedAt,
		Location:   r.Location,
		Public:     r.Public,
	}
}

// Create records a new plant.
func (h *PlantHandler) Create(c echo.Context) error {
	var input plantRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plant input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	plant, err := h.uc.Create(c.Request().Context(), input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPlantResponse(plant), "Plant created successfully")
}

// Get returns one plant.
func (h *PlantHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	plant, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlantResponse(plant), "")
}

// List returns the plants the caller may read.
func (h *PlantHandler) List(c echo.Context) error {
	plants, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlantResponses(plants), "")
}

// ListByRoom returns the readable plants growing in one room.
func (h *PlantHandler) ListByRoom(c echo.Context) error {
	roomID, err := pathID(c, "roomId")
	if err != nil {
		return err
	}

	plants, err := h.uc.ListByRoom(c.Request().Context(), roomID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlantResponses(plants), "")
}

// Search returns readable plants whose name contains the query fragment.
func (h *PlantHandler) Search(c echo.Context) error {
	plants, err := h.uc.SearchByName(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlantResponses(plants), "")
}

// Update modifies a plant.
func (h *PlantHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input plantRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plant input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	plant, err := h.uc.Update(c.Request().Context(), id, input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlantResponse(plant), "Plant updated successfully")
}

// Delete removes a plant.
func (h *PlantHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Plant deleted successfully")
}
