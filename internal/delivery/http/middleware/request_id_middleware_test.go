package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "flora/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process_GeneratesID(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	c, rec := newEchoContext(req)

	var ctxRequestID string
	err := m.Process(func(c echo.Context) error {
		ctxRequestID = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return nil
	})(c)

	require.NoError(t, err)
	assert.NotEmpty(t, ctxRequestID)
	assert.Equal(t, ctxRequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_Process_LoggerCarriesRemoteIP(t *testing.T) {
	var buf bytes.Buffer
	m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = "203.0.113.9:51234"
	c, _ := newEchoContext(req)

	err := m.Process(func(c echo.Context) error {
		deliverycontext.GetLogger(c.Request().Context()).Warn("Login rejected: unknown username")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"remoteIp":"203.0.113.9"`)
	assert.Contains(t, buf.String(), "Login rejected: unknown username")
}

func TestRequestIDMiddleware_Process_KeepsIncomingID(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	c, rec := newEchoContext(req)

	var ctxLogger *slog.Logger
	err := m.Process(func(c echo.Context) error {
		ctxLogger = deliverycontext.GetLogger(c.Request().Context())

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.NotNil(t, ctxLogger)
}
