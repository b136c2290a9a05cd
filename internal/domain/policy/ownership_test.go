package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flora/internal/domain/entity"
)

func principal(id int64, role entity.Role) *entity.Principal {
	return &entity.Principal{UserID: id, Username: "u", Role: role}
}

func TestCanAccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		p       *entity.Principal
		ownerID int64
		op      Operation
		want    bool
	}{
		{name: "nil principal denied", p: nil, ownerID: 1, op: OpRead, want: false},
		{name: "grower reads own", p: principal(1, entity.RoleGrower), ownerID: 1, op: OpRead, want: true},
		{name: "grower updates own", p: principal(1, entity.RoleGrower), ownerID: 1, op: OpUpdate, want: true},
		{name: "grower deletes own", p: principal(1, entity.RoleGrower), ownerID: 1, op: OpDelete, want: true},
		{name: "grower cannot read others", p: principal(1, entity.RoleGrower), ownerID: 2, op: OpRead, want: false},
		{name: "grower cannot update others", p: principal(1, entity.RoleGrower), ownerID: 2, op: OpUpdate, want: false},
		{name: "admin reads others", p: principal(1, entity.RoleAdmin), ownerID: 2, op: OpRead, want: true},
		{name: "admin cannot update others", p: principal(1, entity.RoleAdmin), ownerID: 2, op: OpUpdate, want: false},
		{name: "admin cannot delete others", p: principal(1, entity.RoleAdmin), ownerID: 2, op: OpDelete, want: false},
		{name: "admin updates own", p: principal(1, entity.RoleAdmin), ownerID: 1, op: OpUpdate, want: true},
		{name: "super admin updates others", p: principal(1, entity.RoleSuperAdmin), ownerID: 2, op: OpUpdate, want: true},
		{name: "super admin deletes others", p: principal(1, entity.RoleSuperAdmin), ownerID: 2, op: OpDelete, want: true},
		{name: "unknown role denied", p: principal(1, entity.Role("ROLE_VISITOR")), ownerID: 1, op: OpRead, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, CanAccess(tt.p, tt.ownerID, tt.op))
		})
	}
}

func TestCanAccessEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		p      *entity.Principal
		owners []int64
		op     Operation
		want   bool
	}{
		{name: "nil principal denied", p: nil, owners: []int64{1}, op: OpRead, want: false},
		{name: "grower owns all plants", p: principal(1, entity.RoleGrower), owners: []int64{1, 1}, op: OpUpdate, want: true},
		{name: "grower owns some plants", p: principal(1, entity.RoleGrower), owners: []int64{1, 2}, op: OpUpdate, want: false},
		{name: "grower no plants denied", p: principal(1, entity.RoleGrower), owners: nil, op: OpRead, want: false},
		{name: "admin reads any", p: principal(1, entity.RoleAdmin), owners: []int64{2, 3}, op: OpRead, want: true},
		{name: "admin cannot mutate others", p: principal(1, entity.RoleAdmin), owners: []int64{2}, op: OpDelete, want: false},
		{name: "super admin mutates any", p: principal(1, entity.RoleSuperAdmin), owners: []int64{2, 3}, op: OpDelete, want: true},
		{name: "super admin with no plants", p: principal(1, entity.RoleSuperAdmin), owners: nil, op: OpUpdate, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, CanAccessEvent(tt.p, tt.owners, tt.op))
		})
	}
}
