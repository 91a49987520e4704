package service

import (
	"errors"
	"testing"

	"go-ops-erp/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBindingStore struct {
	roles []model.Role
	perms []model.Permission
	err   error
}

func (s *stubBindingStore) Assign(*model.UserRoleAssignment) error        { return nil }
func (s *stubBindingStore) Revoke(uuid.UUID, uint) error                  { return nil }
func (s *stubBindingStore) BackfillDefaultRole(uint) (int64, error)       { return 0, nil }
func (s *stubBindingStore) ListForUser(uuid.UUID) ([]model.UserRoleAssignment, error) {
	return nil, s.err
}

func (s *stubBindingStore) ListActiveRoles(uuid.UUID) ([]model.Role, error) {
	return s.roles, s.err
}

func (s *stubBindingStore) GetEffectivePermissions(uuid.UUID) ([]model.Permission, error) {
	return s.perms, s.err
}

func role(name string) model.Role {
	return model.Role{Name: name, IsActive: true}
}

func TestResolvePrimaryRole(t *testing.T) {
	cases := []struct {
		name  string
		roles []model.Role
		want  string
	}{
		{"zero roles is the unknown sentinel", nil, PrimaryRoleUnknown},
		{"single viewer", []model.Role{role(model.RoleViewer)}, model.RoleViewer},
		{"operator beats viewer", []model.Role{role(model.RoleOperator), role(model.RoleViewer)}, model.RoleOperator},
		{"viewer then operator, order independent", []model.Role{role(model.RoleViewer), role(model.RoleOperator)}, model.RoleOperator},
		{"admin beats operator", []model.Role{role(model.RoleOperator), role(model.RoleAdmin)}, model.RoleAdmin},
		{"super admin dominates everything", []model.Role{role(model.RoleViewer), role(model.RoleSuperAdmin), role(model.RoleAdmin)}, model.RoleSuperAdmin},
		{"custom roles are ignored", []model.Role{role("auditor"), role(model.RoleOperator)}, model.RoleOperator},
		{"only out-of-hierarchy roles floor at viewer", []model.Role{role("auditor"), role(model.RoleManager)}, model.RoleViewer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolvePrimaryRole(tc.roles))
		})
	}
}

func TestHasPermissionIsFlatMembership(t *testing.T) {
	store := &stubBindingStore{perms: []model.Permission{
		{Action: model.ActionRead, Resource: model.ResourceClient},
		{Action: model.ActionManage, Resource: model.ResourceEquipment},
	}}
	svc := NewRBACService(nil, store)
	userID := uuid.New()

	ok, err := svc.HasPermission(userID, model.ActionRead, model.ResourceClient)
	require.NoError(t, err)
	assert.True(t, ok)

	// MANAGE is never expanded at query time
	ok, err = svc.HasPermission(userID, model.ActionDelete, model.ResourceEquipment)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.HasPermission(userID, model.ActionDelete, model.ResourceRole)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasPermissionEmptySetIsNotAnError(t *testing.T) {
	svc := NewRBACService(nil, &stubBindingStore{})
	ok, err := svc.HasPermission(uuid.New(), model.ActionRead, model.ResourceDashboard)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasPermissionFailsClosedOnStoreError(t *testing.T) {
	svc := NewRBACService(nil, &stubBindingStore{err: errors.New("store unavailable")})
	ok, err := svc.HasPermission(uuid.New(), model.ActionRead, model.ResourceClient)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestEffectivePermissionsDeduplicates(t *testing.T) {
	store := &stubBindingStore{perms: []model.Permission{
		{Action: model.ActionRead, Resource: model.ResourceClient},
		{Action: model.ActionRead, Resource: model.ResourceClient},
	}}
	svc := NewRBACService(nil, store)

	set, err := svc.EffectivePermissions(uuid.New())
	require.NoError(t, err)
	assert.Len(t, set, 1)
}

func TestPrimaryRoleReadsActiveRoles(t *testing.T) {
	store := &stubBindingStore{roles: []model.Role{role(model.RoleViewer), role(model.RoleOperator)}}
	svc := NewRBACService(nil, store)

	label, err := svc.PrimaryRole(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, model.RoleOperator, label)
}

func TestPrimaryRolePropagatesStoreError(t *testing.T) {
	svc := NewRBACService(nil, &stubBindingStore{err: errors.New("store unavailable")})
	_, err := svc.PrimaryRole(uuid.New())
	assert.Error(t, err)
}
