package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"flora/internal/delivery/http/response"
	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dayLayout is the wire format for calendar-day path parameters.
const dayLayout = "2006-01-02"

// EventHandler holds dependencies for cultivation event handlers.
type EventHandler struct {
	uc usecase.EventUsecase
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase) *EventHandler {
	return &EventHandler{uc: uc}
}

type eventRequest struct {
	Kind     string          `json:"kind"`
	Date     time.Time       `json:"date"`
	PlantIDs []int64         `json:"plantIds"`
	Details  json.RawMessage `json:"details"`
}

func (r eventRequest) toInput() usecase.EventInput {
	return usecase.EventInput{
		Kind:     entity.EventKind(r.Kind),
		Date:     r.Date,
		PlantIDs: r.PlantIDs,
		Details:  r.Details,
	}
}

// pathDay parses a YYYY-MM-DD path parameter.
func pathDay(c echo.Context, name string) (time.Time, error) {
	day, err := time.Parse(dayLayout, c.Param(name))
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " parameter, expected YYYY-MM-DD")
	}

	return day, nil
}

// Create records a new event.
func (h *EventHandler) Create(c echo.Context) error {
	var input eventRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	event, err := h.uc.Create(c.Request().Context(), input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := toEventResponse(event)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, resp, "Event created successfully")
}

// Get returns one event.
func (h *EventHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	event, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := toEventResponse(event)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resp, "")
}

// List returns the readable events.
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondList(c, events)
}

// ListByKind returns the readable events of one kind.
func (h *EventHandler) ListByKind(c echo.Context) error {
	events, err := h.uc.ListByKind(c.Request().Context(), entity.EventKind(c.Param("kind")))
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondList(c, events)
}

// ListByPlant returns the readable events attached to one plant.
func (h *EventHandler) ListByPlant(c echo.Context) error {
	plantID, err := pathID(c, "plantId")
	if err != nil {
		return err
	}

	events, err := h.uc.ListByPlant(c.Request().Context(), plantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondList(c, events)
}

// ListByDate returns the readable events on one calendar day.
func (h *EventHandler) ListByDate(c echo.Context) error {
	day, err := pathDay(c, "date")
	if err != nil {
		return err
	}

	events, err := h.uc.ListByDate(c.Request().Context(), day)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondList(c, events)
}

// ListAfter returns the readable events dated after one calendar day.
func (h *EventHandler) ListAfter(c echo.Context) error {
	after, err := pathDay(c, "date")
	if err != nil {
		return err
	}

	events, err := h.uc.ListAfter(c.Request().Context(), after)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondList(c, events)
}

// Update modifies an event.
func (h *EventHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input eventRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	event, err := h.uc.Update(c.Request().Context(), id, input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := toEventResponse(event)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resp, "Event updated successfully")
}

// Delete removes an event.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Event deleted successfully")
}

func (h *EventHandler) respondList(c echo.Context, events []*entity.Event) error {
	resp, err := toEventResponses(events)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resp, "")
}
