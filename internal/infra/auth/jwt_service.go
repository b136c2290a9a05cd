// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"flora/config"
	"flora/internal/domain/entity"
	"flora/internal/domain/service"
	"flora/internal/errors"
)

// sessionClaims is the wire shape of a session token. The subject holds
// the username; role and user ID ride along so authorization does not
// need a database round trip.
type sessionClaims struct {
	jwt.RegisteredClaims
	Role   string `json:"user_role"`
	UserID int64  `json:"user_id"`
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Token),
		ttl:    cfg.Auth.TokenTTL,
	}, nil
}

// Issue creates a signed session token for the given principal.
func (s *jwtService) Issue(p *entity.Principal) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role:   p.Role.String(),
		UserID: p.UserID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

// Verify parses and validates a session token. When expectedSubject is
// non-empty the token subject must match it exactly; an empty
// expectedSubject trusts the subject carried in the claims.
func (s *jwtService) Verify(tokenString, expectedSubject string) (*service.Claims, error) {
	parsed := new(sessionClaims)
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, translateJWTError(err)
	}
	if !token.Valid {
		return nil, service.ErrMalformedToken
	}

	if expectedSubject != "" && parsed.Subject != expectedSubject {
		return nil, service.ErrSubjectMismatch
	}

	role := entity.Role(parsed.Role)
	if !role.IsValid() {
		return nil, service.ErrMalformedToken
	}

	claims := &service.Claims{
		Subject: parsed.Subject,
		Role:    role,
		UserID:  parsed.UserID,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time
	}
	if parsed.ExpiresAt != nil {
		claims.Expiry = parsed.ExpiresAt.Time
	}

	return claims, nil
}

// TTL returns the configured lifetime of issued tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

// translateJWTError maps jwt library failures onto the domain service
// sentinels so callers never import the jwt package.
func translateJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return service.ErrBadSignature
	default:
		return service.ErrMalformedToken
	}
}
