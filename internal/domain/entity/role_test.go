package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleCan(t *testing.T) {
	adminOnly := []Permission{PermissionUsersManage, PermissionDataExport}

	for _, p := range staffPermissions {
		assert.True(t, RoleAdmin.Can(p), p)
		assert.True(t, RoleDataEntry.Can(p), p)
		assert.True(t, RoleAccounts.Can(p), p)
	}
	for _, p := range adminOnly {
		assert.True(t, RoleAdmin.Can(p), p)
		assert.False(t, RoleDataEntry.Can(p), p)
		assert.False(t, RoleAccounts.Can(p), p)
	}

	assert.False(t, Role("driver").Can(PermissionOrdersRead))
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAccounts.IsValid())
	assert.False(t, Role("ADMIN").IsValid())
	assert.False(t, Role("").IsValid())
}
