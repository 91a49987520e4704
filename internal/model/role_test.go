package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grantSet(t *testing.T, roleName string) map[PermissionKey]struct{} {
	t.Helper()
	keys, ok := SystemRoleGrants[roleName]
	require.Truef(t, ok, "no grant table for %s", roleName)
	set := make(map[PermissionKey]struct{}, len(keys))
	for _, k := range keys {
		_, dup := set[k]
		assert.Falsef(t, dup, "%s grants %s %s twice", roleName, k.Action, k.Resource)
		set[k] = struct{}{}
	}
	return set
}

func TestEverySystemRoleHasGrants(t *testing.T) {
	for _, role := range SystemRoles {
		assert.NotEmptyf(t, SystemRoleGrants[role.Name], "role %s has no grants", role.Name)
	}
	assert.Len(t, SystemRoles, 5)
}

func TestSuperAdminGrantsFullCatalog(t *testing.T) {
	set := grantSet(t, RoleSuperAdmin)
	assert.Len(t, set, len(Catalog()))
}

func TestAdminExcludesRoleAdministration(t *testing.T) {
	set := grantSet(t, RoleAdmin)

	_, hasManageRole := set[PermissionKey{ActionManage, ResourceRole}]
	assert.False(t, hasManageRole, "admin must not manage roles")
	_, hasDeleteRole := set[PermissionKey{ActionDelete, ResourceRole}]
	assert.False(t, hasDeleteRole, "admin must not delete roles")

	// Everything else is granted
	assert.Len(t, set, len(Catalog())-2)
	_, ok := set[PermissionKey{ActionRead, ResourceClient}]
	assert.True(t, ok)
	_, ok = set[PermissionKey{ActionManage, ResourceUser}]
	assert.True(t, ok)
}

func TestManagerGrants(t *testing.T) {
	set := grantSet(t, RoleManager)

	for _, act := range []Action{ActionRead, ActionCreate, ActionUpdate} {
		_, ok := set[PermissionKey{act, ResourceUser}]
		assert.Truef(t, ok, "manager should hold %s USER", act)
	}
	_, ok := set[PermissionKey{ActionDelete, ResourceUser}]
	assert.False(t, ok, "manager must not delete users")

	for _, res := range []Resource{ResourceDashboard, ResourceClient, ResourceEquipment, ResourceQuotation} {
		for _, act := range Actions {
			_, ok := set[PermissionKey{act, res}]
			assert.Truef(t, ok, "manager should hold %s %s", act, res)
		}
	}

	_, ok = set[PermissionKey{ActionRead, ResourceCompany}]
	assert.True(t, ok)
	_, ok = set[PermissionKey{ActionUpdate, ResourceCompany}]
	assert.False(t, ok)
	_, ok = set[PermissionKey{ActionRead, ResourceServiceOrder}]
	assert.False(t, ok, "manager has no service order access")
}

func TestOperatorGrants(t *testing.T) {
	set := grantSet(t, RoleOperator)

	for _, res := range []Resource{ResourceServiceOrder, ResourcePurchaseOrder, ResourceEquipment, ResourceDashboard} {
		for _, act := range Actions {
			_, ok := set[PermissionKey{act, res}]
			assert.Truef(t, ok, "operator should hold %s %s", act, res)
		}
	}

	_, ok := set[PermissionKey{ActionRead, ResourceClient}]
	assert.True(t, ok)
	_, ok = set[PermissionKey{ActionUpdate, ResourceClient}]
	assert.False(t, ok)

	_, ok = set[PermissionKey{ActionRead, ResourceQuotation}]
	assert.True(t, ok)
	_, ok = set[PermissionKey{ActionCreate, ResourceQuotation}]
	assert.True(t, ok)
	_, ok = set[PermissionKey{ActionUpdate, ResourceQuotation}]
	assert.False(t, ok, "operator cannot update quotations")
}

func TestViewerIsReadOnly(t *testing.T) {
	set := grantSet(t, RoleViewer)
	assert.Len(t, set, 6)
	for key := range set {
		assert.Equal(t, ActionRead, key.Action)
	}
	_, ok := set[PermissionKey{ActionRead, ResourceUser}]
	assert.False(t, ok, "viewer cannot see users")
}
