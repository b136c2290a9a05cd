// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core account entity. The username doubles as the login
// identifier and the token subject; exactly one Role is persisted per user.
type User struct {
	ID           int64     // Identity column, also the owner id recorded on owned resources.
	Username     string    // Unique login identifier (an email address in practice).
	PasswordHash string    // bcrypt hash of the password; never exposed outside the domain.
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name.
	Role         Role      // The single role assigned to this account.
	RegisteredAt time.Time // Timestamp of when this account was created.
}

// Principal derives the request identity this account logs in as.
func (u *User) Principal() *Principal {
	return &Principal{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

// Principal is the authenticated identity attached to a request.
// It is reconstructed per request from a verified token and never persisted.
type Principal struct {
	UserID   int64  // The authenticated user's id, from the token's user_id claim.
	Username string // The token subject.
	Role     Role   // The role carried by the token's user_role claim.
}

// IsSuperAdmin reports whether the principal holds the super-admin role.
func (p *Principal) IsSuperAdmin() bool {
	return p != nil && p.Role == RoleSuperAdmin
}

// IsAdmin reports whether the principal holds the admin or super-admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && (p.Role == RoleAdmin || p.Role == RoleSuperAdmin)
}
