package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flora/config"
	deliverycontext "flora/internal/delivery/context"
	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/service"
	mockservice "flora/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			CookieName: "jwt",
			TokenTTL:   24 * time.Hour,
		},
	}
}

func newEchoContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_NoCookie(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/plants", nil)
	c, _ := newEchoContext(req)

	var principal *entity.Principal
	err := m.Authenticate(func(c echo.Context) error {
		principal = deliverycontext.GetPrincipal(c.Request().Context())

		return nil
	})(c)

	require.NoError(t, err)
	assert.Nil(t, principal)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("bad-token", "").Return(nil, errors.New("signature mismatch"))

	m := NewAuthMiddleware(tokenSvc, newTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/plants", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "bad-token"})
	c, _ := newEchoContext(req)

	var nextCalled bool
	var principal *entity.Principal
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true
		principal = deliverycontext.GetPrincipal(c.Request().Context())

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Nil(t, principal)
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("good-token", "").Return(&service.Claims{
		Subject: "alice",
		Role:    entity.RoleAdmin,
		UserID:  7,
	}, nil)

	m := NewAuthMiddleware(tokenSvc, newTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/plants", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "good-token"})
	c, _ := newEchoContext(req)

	var principal *entity.Principal
	err := m.Authenticate(func(c echo.Context) error {
		principal = deliverycontext.GetPrincipal(c.Request().Context())

		return nil
	})(c)

	require.NoError(t, err)
	require.NotNil(t, principal)
	assert.Equal(t, int64(7), principal.UserID)
	assert.Equal(t, "alice", principal.Username)
	assert.Equal(t, entity.RoleAdmin, principal.Role)
}

func TestAuthMiddleware_Authenticate_KeepsExistingPrincipal(t *testing.T) {
	// No Verify expectation: an already-attached principal must short
	// circuit cookie resolution entirely.
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	attached := &entity.Principal{UserID: 3, Username: "bob", Role: entity.RoleGrower}

	req := httptest.NewRequest(http.MethodGet, "/plants", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "some-token"})
	ctx := deliverycontext.WithPrincipal(req.Context(), attached)
	c, _ := newEchoContext(req.WithContext(ctx))

	var principal *entity.Principal
	err := m.Authenticate(func(c echo.Context) error {
		principal = deliverycontext.GetPrincipal(c.Request().Context())

		return nil
	})(c)

	require.NoError(t, err)
	assert.Same(t, attached, principal)
}

func TestAuthMiddleware_RequirePrincipal_Anonymous(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/plants", nil)
	c, _ := newEchoContext(req)

	err := m.RequirePrincipal(func(c echo.Context) error {
		t.Fatal("handler must not run for anonymous requests")

		return nil
	})(c)

	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthMiddleware_RequirePrincipal_Authenticated(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/plants", nil)
	ctx := deliverycontext.WithPrincipal(req.Context(), &entity.Principal{
		UserID:   3,
		Username: "bob",
		Role:     entity.RoleGrower,
	})
	c, _ := newEchoContext(req.WithContext(ctx))

	var nextCalled bool
	err := m.RequirePrincipal(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}
