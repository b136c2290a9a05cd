// Package policy holds the single ownership decision function every
// resource operation consults. It replaces per-service role checks
// with one pure, testable matrix.
package policy

import "flora/internal/domain/entity"

// Operation classifies what a caller is about to do to a resource.
type Operation int

const (
	// OpRead covers single lookups and listings.
	OpRead Operation = iota
	// OpUpdate covers any mutation short of deletion.
	OpUpdate
	// OpDelete covers deletion.
	OpDelete
)

// String returns a short name for the operation, used in audit logs.
func (op Operation) String() string {
	switch op {
	case OpRead:
		return "read"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// CanAccess decides whether a principal may perform op on a resource
// recorded as owned by ownerID. The matrix:
//
//	SUPER_ADMIN: every operation on any resource.
//	ADMIN:       read on any resource; update/delete only on its own.
//	GROWER:      any operation, but only on its own resources.
//	no principal: deny.
//
// Callers must check resource existence before ownership so that a
// missing resource surfaces as not-found rather than forbidden.
func CanAccess(p *entity.Principal, ownerID int64, op Operation) bool {
	if p == nil {
		return false
	}

	switch p.Role {
	case entity.RoleSuperAdmin:
		return true
	case entity.RoleAdmin:
		if op == OpRead {
			return true
		}

		return p.UserID == ownerID
	case entity.RoleGrower:
		return p.UserID == ownerID
	default:
		return false
	}
}

// CanAccessEvent decides access to an event, whose ownership is
// transitive over its associated plants: the operation is allowed only
// if CanAccess holds for every plant owner. An event with no plants is
// only accessible to privileged readers and SUPER_ADMIN.
func CanAccessEvent(p *entity.Principal, plantOwnerIDs []int64, op Operation) bool {
	if p == nil {
		return false
	}
	if p.Role == entity.RoleSuperAdmin {
		return true
	}
	if op == OpRead && p.Role == entity.RoleAdmin {
		return true
	}
	if len(plantOwnerIDs) == 0 {
		return false
	}

	for _, ownerID := range plantOwnerIDs {
		if !CanAccess(p, ownerID, op) {
			return false
		}
	}

	return true
}
