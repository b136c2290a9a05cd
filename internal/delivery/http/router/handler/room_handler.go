package handler

import (
	"net/http"

	"flora/internal/delivery/http/response"
	"flora/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RoomHandler holds dependencies for grow room handlers.
type RoomHandler struct {
	uc usecase.RoomUsecase
}

// NewRoomHandler is the constructor for RoomHandler, injected by Fx.
func NewRoomHandler(uc usecase.RoomUsecase) *RoomHandler {
	return &RoomHandler{uc: uc}
}

type roomRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	LightHours  string  `json:"lightHours"`
	Humidity    float64 `json:"humidity"`
	AmbientTemp float64 `json:"ambientTemp"`
}

func (r roomRequest) toInput() usecase.RoomInput {
	return usecase.RoomInput{
		Name:        r.Name,
		Description: r.Description,
		LightHours:  r.LightHours,
		Humidity:    r.Humidity,
		AmbientTemp: r.AmbientTemp,
	}
}

// Create records a new room.
func (h *RoomHandler) Create(c echo.Context) error {
	var input roomRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	room, err := h.uc.Create(c.Request().Context(), input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRoomResponse(room), "Room created successfully")
}

// Get returns one room.
func (h *RoomHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	room, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRoomResponse(room), "")
}

// List returns the rooms the caller may read.
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRoomResponses(rooms), "")
}

// Update modifies a room.
func (h *RoomHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input roomRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	room, err := h.uc.Update(c.Request().Context(), id, input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRoomResponse(room), "Room updated successfully")
}

// Delete removes a room.
func (h *RoomHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Room deleted successfully")
}
