package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "flora/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_HandleHTTPError_AppError(t *testing.T) {
	m := newErrorMiddleware()

	req := httptest.NewRequest(http.MethodGet, "/plants/9", nil)
	c, rec := newEchoContext(req)

	m.HandleHTTPError(domainerrors.ErrPlantNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PLANT_NOT_FOUND")
	assert.Contains(t, rec.Body.String(), "Plant not found")
}

func TestErrorMiddleware_HandleHTTPError_WrappedAppError(t *testing.T) {
	m := newErrorMiddleware()

	req := httptest.NewRequest(http.MethodDelete, "/rooms/3", nil)
	c, rec := newEchoContext(req)

	m.HandleHTTPError(errors.Wrap(domainerrors.ErrForbidden, "delete room"), c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestErrorMiddleware_HandleHTTPError_EchoHTTPError(t *testing.T) {
	m := newErrorMiddleware()

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	c, rec := newEchoContext(req)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestErrorMiddleware_HandleHTTPError_UnknownError(t *testing.T) {
	m := newErrorMiddleware()

	req := httptest.NewRequest(http.MethodGet, "/plants", nil)
	c, rec := newEchoContext(req)

	m.HandleHTTPError(errors.New("connection reset"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestErrorMiddleware_HandleHTTPError_CommittedResponse(t *testing.T) {
	m := newErrorMiddleware()

	req := httptest.NewRequest(http.MethodGet, "/plants", nil)
	c, rec := newEchoContext(req)

	c.Response().WriteHeader(http.StatusOK)
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
}
