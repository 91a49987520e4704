package repository

import (
	"testing"

	"go-ops-erp/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertSystemRolesLeavesRoleTableUntouched(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoleRepo(db)

	rows := sqlmock.NewRows([]string{"id"})
	for i := range model.SystemRoles {
		rows.AddRow(i + 1)
	}
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "roles"`).WillReturnRows(rows)
	mock.ExpectCommit()

	require.NoError(t, repo.UpsertSystemRoles(model.SystemRoles))

	// A reseed in the same process must not carry ids from the first run into
	// its INSERT, or the name-keyed upsert turns into a pkey conflict.
	for _, role := range model.SystemRoles {
		assert.Zerof(t, role.ID, "id written back into the shared table for %s", role.Name)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
