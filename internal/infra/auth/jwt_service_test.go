package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flora/config"
	"flora/internal/domain/entity"
	"flora/internal/domain/service"
)

func newTestService(t *testing.T, ttl time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Token = "test-secret"
	cfg.Auth = &config.AuthConfig{TokenTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func testPrincipal() *entity.Principal {
	return &entity.Principal{
		UserID:   42,
		Username: "rosa",
		Role:     entity.RoleGrower,
	}
}

func TestJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestService(t, time.Hour)

	token, err := svc.Issue(testPrincipal())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token, "")
	require.NoError(t, err)
	assert.Equal(t, "rosa", claims.Subject)
	assert.Equal(t, entity.RoleGrower, claims.Role)
	assert.Equal(t, int64(42), claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.Expiry, time.Minute)

	principal := claims.Principal()
	assert.Equal(t, int64(42), principal.UserID)
	assert.Equal(t, "rosa", principal.Username)
}

func TestJWTService_VerifySubjectMatch(t *testing.T) {
	svc := newTestService(t, time.Hour)

	token, err := svc.Issue(testPrincipal())
	require.NoError(t, err)

	_, err = svc.Verify(token, "rosa")
	assert.NoError(t, err)

	_, err = svc.Verify(token, "someone-else")
	assert.ErrorIs(t, err, service.ErrSubjectMismatch)
}

func TestJWTService_VerifyExpired(t *testing.T) {
	svc := newTestService(t, -time.Minute)

	token, err := svc.Issue(testPrincipal())
	require.NoError(t, err)

	_, err = svc.Verify(token, "")
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_VerifyTampered(t *testing.T) {
	svc := newTestService(t, time.Hour)

	token, err := svc.Issue(testPrincipal())
	require.NoError(t, err)

	// Flip the last character of the signature.
	last := token[len(token)-1]
	replacement := byte('A')
	if last == replacement {
		replacement = 'B'
	}
	tampered := token[:len(token)-1] + string(replacement)

	_, err = svc.Verify(tampered, "")
	assert.ErrorIs(t, err, service.ErrBadSignature)
}

func TestJWTService_VerifyMalformed(t *testing.T) {
	svc := newTestService(t, time.Hour)

	_, err := svc.Verify("not.a.token", "")
	assert.ErrorIs(t, err, service.ErrMalformedToken)

	_, err = svc.Verify("", "")
	assert.ErrorIs(t, err, service.ErrMalformedToken)
}

func TestJWTService_VerifyRejectsUnexpectedAlgorithm(t *testing.T) {
	svc := newTestService(t, time.Hour)

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "rosa",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role:   entity.RoleGrower.String(),
		UserID: 42,
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned, "")
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsUnknownRole(t *testing.T) {
	svc := newTestService(t, time.Hour)

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "rosa",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role:   "ROLE_VISITOR",
		UserID: 42,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token, "")
	assert.ErrorIs(t, err, service.ErrMalformedToken)
}

func TestJWTService_TTL(t *testing.T) {
	svc := newTestService(t, 24*time.Hour)
	assert.Equal(t, 24*time.Hour, svc.TTL())
}
