package middleware

import (
	"log/slog"

	"flora/config"
	deliverycontext "flora/internal/delivery/context"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the session cookie into a request principal.
// Identity resolution never rejects on its own: a missing or invalid
// cookie leaves the request anonymous, and RequirePrincipal guards the
// protected route groups.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg, logger: logger}
}

func (m *AuthMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

// Authenticate reads the session cookie and, when it verifies, attaches
// the principal to the request context exactly once.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Attach at most once per request.
		if deliverycontext.GetPrincipal(c.Request().Context()) != nil {
			return next(c)
		}

		cookie, err := c.Cookie(m.cfg.Auth.CookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		claims, err := m.tokenSvc.Verify(cookie.Value, "")
		if err != nil {
			m.log(c).Warn("Session cookie rejected",
				slog.String("error", err.Error()),
				slog.String("remoteIp", c.RealIP()),
			)

			return next(c)
		}

		p := claims.Principal()
		m.log(c).Info("Request authenticated",
			slog.Int64("userId", p.UserID),
			slog.String("username", p.Username),
			slog.String("role", p.Role.String()),
		)

		ctx := deliverycontext.WithPrincipal(c.Request().Context(), p)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequirePrincipal rejects requests that carry no authenticated
// principal. Used on every route group except registration and login.
func (m *AuthMiddleware) RequirePrincipal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetPrincipal(c.Request().Context()) == nil {
			return domainerrors.ErrUnauthenticated
		}

		return next(c)
	}
}
