package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDirectoryQueries(t *testing.T) {
	t.Run("users in role", func(t *testing.T) {
		query, args, err := usersInRoleQuery("Employee").ToSql()
		assert.NoError(t, err)
		assert.Equal(t,
			"SELECT er.employee_id FROM employee_roles er JOIN roles r ON r.id = er.role_id WHERE r.name = ? ORDER BY er.employee_id",
			query)
		assert.Equal(t, []any{"Employee"}, args)
	})

	t.Run("roles of employee", func(t *testing.T) {
		id := uuid.New()
		query, args, err := rolesOfQuery(id).ToSql()
		assert.NoError(t, err)
		assert.Contains(t, query, "WHERE er.employee_id = ?")
		assert.Equal(t, []any{id}, args)
	})
}
