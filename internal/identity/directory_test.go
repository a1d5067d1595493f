package identity_test

import (
	"context"
	"testing"

	"github.com/BavyaVasu/leave-management/internal/identity"
	identityerrors "github.com/BavyaVasu/leave-management/internal/identity/errors"
	"github.com/BavyaVasu/leave-management/internal/shared/contextutil"
	"github.com/BavyaVasu/leave-management/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDirectory(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	ana := testutil.SeedEmployee(t, db, "Ana", "Employee")
	ben := testutil.SeedEmployee(t, db, "Ben", "Employee", "Administrator")
	testutil.SeedEmployee(t, db, "Cy", "Administrator")

	dir := identity.NewDirectory(db, zap.NewNop())

	t.Run("list users in role", func(t *testing.T) {
		ids, err := dir.ListUsersInRole(ctx, "Employee")
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{ana.ID, ben.ID}, ids)
	})

	t.Run("unknown role has no members", func(t *testing.T) {
		ids, err := dir.ListUsersInRole(ctx, "Contractor")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("list employees in role ordered by name", func(t *testing.T) {
		emps, err := dir.ListEmployeesInRole(ctx, "Employee")
		require.NoError(t, err)
		require.Len(t, emps, 2)
		assert.Equal(t, "Ana", emps[0].FullName)
		assert.Equal(t, ben.ID, emps[1].ID)
	})

	t.Run("roles of", func(t *testing.T) {
		roles, err := dir.RolesOf(ctx, ben.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Administrator", "Employee"}, roles)
	})

	t.Run("find employee", func(t *testing.T) {
		emp, err := dir.FindEmployeeByID(ctx, ana.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana", emp.FullName)

		_, err = dir.FindEmployeeByID(ctx, uuid.New())
		assert.ErrorIs(t, err, identityerrors.ErrEmployeeNotFound)
	})

	t.Run("current employee comes from context", func(t *testing.T) {
		_, err := dir.CurrentEmployee(ctx)
		assert.ErrorIs(t, err, identityerrors.ErrNotAuthenticated)

		id, err := dir.CurrentEmployee(contextutil.WithEmployeeID(ctx, ana.ID))
		require.NoError(t, err)
		assert.Equal(t, ana.ID, id)
	})
}
