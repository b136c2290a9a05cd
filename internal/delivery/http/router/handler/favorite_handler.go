package handler

import (
	"net/http"
	"strings"

	"flora/internal/delivery/http/response"
	"flora/internal/domain/entity"
	"flora/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for favorites handlers.
type FavoriteHandler struct {
	uc usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

// pathKind reads the favorite kind path parameter. Validation of the
// value itself happens in the use case.
func pathKind(c echo.Context) entity.FavoriteKind {
	return entity.FavoriteKind(strings.ToUpper(c.Param("kind")))
}

// Add marks a target as a favorite of the caller.
func (h *FavoriteHandler) Add(c echo.Context) error {
	targetID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Add(c.Request().Context(), pathKind(c), targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Favorite added successfully")
}

// Remove unmarks a target.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	targetID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Remove(c.Request().Context(), pathKind(c), targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Favorite removed successfully")
}

// List returns the caller's favorites of one kind with targets hydrated.
func (h *FavoriteHandler) List(c echo.Context) error {
	output, err := h.uc.List(c.Request().Context(), pathKind(c))
	if err != nil {
		return errors.WithStack(err)
	}

	switch output.Kind {
	case entity.FavoritePlant:
		return response.Success(c, http.StatusOK, toPlantResponses(output.Plants), "")
	case entity.FavoriteRoom:
		return response.Success(c, http.StatusOK, toRoomResponses(output.Rooms), "")
	default:
		return response.Success(c, http.StatusOK, toUserResponses(output.Users), "")
	}
}
