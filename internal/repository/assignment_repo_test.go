package repository

import (
	"testing"

	"go-ops-erp/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestListActiveRolesFiltersExpiryAndInactive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssignmentRepo(db)

	// The join must exclude expired assignments and inactive roles in SQL,
	// not in Go.
	mock.ExpectQuery(`SELECT .* FROM "roles" JOIN user_role_assignments .*is_active.*expires_at IS NULL OR ura\.expires_at >`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "display_name", "is_system", "is_active"}).
			AddRow(4, model.RoleOperator, "Operator", true, true))

	roles, err := repo.ListActiveRoles(uuid.New())
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, model.RoleOperator, roles[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEffectivePermissionsJoinsThroughBindings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssignmentRepo(db)

	mock.ExpectQuery(`SELECT DISTINCT .* FROM "permissions" JOIN role_permissions .*JOIN roles .*is_active.*JOIN user_role_assignments .*expires_at IS NULL OR ura\.expires_at >`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action", "resource"}).
			AddRow(1, string(model.ActionRead), string(model.ResourceClient)).
			AddRow(2, string(model.ActionRead), string(model.ResourceDashboard)))

	perms, err := repo.GetEffectivePermissions(uuid.New())
	require.NoError(t, err)
	require.Len(t, perms, 2)
	assert.Equal(t, model.ActionRead, perms[0].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEffectivePermissionsEmptyIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssignmentRepo(db)

	mock.ExpectQuery(`SELECT DISTINCT .* FROM "permissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action", "resource"}))

	perms, err := repo.GetEffectivePermissions(uuid.New())
	require.NoError(t, err)
	assert.Empty(t, perms)
}
