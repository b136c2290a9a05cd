package handler

import (
	"net/http"

	"flora/internal/delivery/http/response"
	"flora/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NutrientHandler holds dependencies for nutrient catalog handlers.
type NutrientHandler struct {
	uc usecase.NutrientUsecase
}

// NewNutrientHandler is the constructor for NutrientHandler, injected by Fx.
func NewNutrientHandler(uc usecase.NutrientUsecase) *NutrientHandler {
	return &NutrientHandler{uc: uc}
}

type nutrientRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// Create records a new nutrient.
func (h *NutrientHandler) Create(c echo.Context) error {
	var input nutrientRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid nutrient input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	nutrient, err := h.uc.Create(c.Request().Context(), usecase.NutrientInput{
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toNutrientResponse(nutrient), "Nutrient created successfully")
}

// Get returns one nutrient.
func (h *NutrientHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	nutrient, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNutrientResponse(nutrient), "")
}

// List returns the nutrients the caller may read.
func (h *NutrientHandler) List(c echo.Context) error {
	nutrients, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNutrientResponses(nutrients), "")
}

// Update modifies a nutrient.
func (h *NutrientHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input nutrientRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid nutrient input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	nutrient, err := h.uc.Update(c.Request().Context(), id, usecase.NutrientInput{
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNutrientResponse(nutrient), "Nutrient updated successfully")
}

// Delete removes a nutrient.
func (h *NutrientHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Nutrient deleted successfully")
}
