package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/store-order-api/models"
)

func uintPtr(v uint) *uint { return &v }

func TestAuthorizeAdminAllowsEverything(t *testing.T) {
	admin := Identity{EmployeeID: 1, Role: models.RoleAdmin}

	ops := []Operation{OpList, OpRead, OpCreate, OpUpdate, OpDelete}
	owners := []*uint{nil, uintPtr(1), uintPtr(99)}

	for _, op := range ops {
		for _, owner := range owners {
			d := Authorize(admin, op, owner)
			assert.True(t, d.Allowed, "admin should be allowed op=%d owner=%v", op, owner)
		}
	}
}

func TestAuthorizeShopper(t *testing.T) {
	shopper := Identity{EmployeeID: 7, Role: models.RoleShopper}

	tests := []struct {
		name    string
		op      Operation
		ownerID *uint
		allowed bool
		reason  Reason
	}{
		{"list always allowed", OpList, nil, true, ""},
		{"read own order", OpRead, uintPtr(7), true, ""},
		{"read foreign order", OpRead, uintPtr(3), false, ReasonForbiddenOwnership},
		{"read unassigned order", OpRead, nil, false, ReasonForbiddenOwnership},
		{"update own order", OpUpdate, uintPtr(7), true, ""},
		{"update foreign order", OpUpdate, uintPtr(3), false, ReasonForbiddenOwnership},
		{"update unassigned order", OpUpdate, nil, false, ReasonForbiddenOwnership},
		{"create denied by role", OpCreate, nil, false, ReasonForbiddenRole},
		{"delete denied by role", OpDelete, uintPtr(7), false, ReasonForbiddenRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Authorize(shopper, tt.op, tt.ownerID)
			assert.Equal(t, tt.allowed, d.Allowed)
			if !tt.allowed {
				assert.Equal(t, tt.reason, d.Reason)
			}
		})
	}
}

func TestAuthorizeUnknownRoleDenied(t *testing.T) {
	d := Authorize(Identity{EmployeeID: 1, Role: "intern"}, OpRead, uintPtr(1))
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonForbiddenRole, d.Reason)
}

func TestReasonMessages(t *testing.T) {
	assert.NotEmpty(t, ReasonForbiddenRole.Message())
	assert.NotEmpty(t, ReasonForbiddenOwnership.Message())
	assert.NotEqual(t, ReasonForbiddenRole.Message(), ReasonForbiddenOwnership.Message())
}
