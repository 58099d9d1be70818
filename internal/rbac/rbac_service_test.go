package rbac_test

import (
	"testing"

	"go-ems/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestEnforce(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	cases := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"admin can delete department", rbac.RoleAdmin, "departments", "delete", true},
		{"admin inherits manager create salary", rbac.RoleAdmin, "salaries", "create", true},
		{"admin inherits employee read", rbac.RoleAdmin, "employees", "read", true},
		{"manager can create employee", rbac.RoleManager, "employees", "create", true},
		{"manager cannot delete department", rbac.RoleManager, "departments", "delete", false},
		{"employee can read salary", rbac.RoleEmployee, "salaries", "read", true},
		{"employee cannot create salary", rbac.RoleEmployee, "salaries", "create", false},
		{"unknown role denied", "GUEST", "employees", "read", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tc.role, tc.resource, tc.action)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}
