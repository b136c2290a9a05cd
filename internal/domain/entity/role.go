// Package entity contains the core business objects of the project.
package entity

// Role represents the single role a user holds in the system.
type Role string

const (
	// RoleGrower is the default role assigned at registration.
	RoleGrower Role = "ROLE_GROWER"
	// RoleAdmin may read any resource but mutate only its own.
	RoleAdmin Role = "ROLE_ADMIN"
	// RoleSuperAdmin bypasses ownership for every operation.
	RoleSuperAdmin Role = "ROLE_SUPER_ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleGrower, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}
