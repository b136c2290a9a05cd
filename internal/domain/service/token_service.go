// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"flora/internal/domain/entity"
	"flora/internal/errors"
)

// Verification failures. They all collapse to "unauthenticated" at the
// identity filter but stay distinct for auditing and tests.
var (
	// ErrMalformedToken means the token's transport encoding is invalid.
	ErrMalformedToken = errors.New("malformed token")
	// ErrBadSignature means the token's integrity check failed.
	ErrBadSignature = errors.New("bad token signature")
	// ErrTokenExpired means now >= the token's expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrSubjectMismatch means the decoded subject does not equal the
	// subject the caller expected to find.
	ErrSubjectMismatch = errors.New("token subject mismatch")
)

// Claims is the structured, time-bounded payload a token encodes.
// Role and user id are never re-derived from storage during
// verification; the token is a pure bearer credential.
type Claims struct {
	Subject  string      // The username the token was issued for.
	Role     entity.Role // The role claim, immutable for the token's lifetime.
	UserID   int64       // The user id claim.
	IssuedAt time.Time   // When the token was issued.
	Expiry   time.Time   // Strict upper bound on validity; always after IssuedAt.
}

// Principal converts verified claims into the request-scoped identity.
func (c *Claims) Principal() *entity.Principal {
	return &entity.Principal{
		UserID:   c.UserID,
		Username: c.Subject,
		Role:     c.Role,
	}
}

// TokenService issues and verifies the signed, self-contained tokens
// carried by the transport cookie.
type TokenService interface {
	// Issue builds claims for the authenticated identity with
	// issued-at = now and expiry = now + the configured TTL, and
	// returns the signed token string.
	Issue(principal *entity.Principal) (string, error)

	// Verify decodes and validates a token. A non-empty
	// expectedSubject additionally requires the decoded subject to
	// match, for deployments that re-check against a freshly loaded
	// identity; the default path passes "" and trusts the claims.
	Verify(token string, expectedSubject string) (*Claims, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
