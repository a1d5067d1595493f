// Package testutil provides databases and fixtures for service tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/BavyaVasu/leave-management/internal/domain"
	"github.com/BavyaVasu/leave-management/internal/schema"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a private in-memory database with the schema migrated.
// It holds a single connection, so callers must not query outside an open
// transaction while one is in progress.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
	cfg.DisableForeignKeyConstraintWhenMigrating = true
	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(schema.Models...))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

// SeedEmployee inserts an employee holding roles, creating missing roles.
func SeedEmployee(t *testing.T, db *gorm.DB, fullName string, roles ...string) domain.Employee {
	t.Helper()

	emp := domain.Employee{ID: uuid.New(), FullName: fullName, Email: fmt.Sprintf("%s@example.com", uuid.NewString()[:8])}
	require.NoError(t, db.Create(&emp).Error)

	for _, name := range roles {
		role := domain.Role{}
		err := db.Where(domain.Role{Name: name}).
			Attrs(domain.Role{ID: uuid.New()}).
			FirstOrCreate(&role).Error
		require.NoError(t, err)
		require.NoError(t, db.Create(&domain.EmployeeRole{EmployeeID: emp.ID, RoleID: role.ID}).Error)
	}
	return emp
}

func SeedLeaveType(t *testing.T, db *gorm.DB, name string, defaultDays int) domain.LeaveType {
	t.Helper()

	lt := domain.LeaveType{Name: name, DefaultDays: defaultDays, DateCreated: time.Now().UTC()}
	require.NoError(t, db.Create(&lt).Error)
	return lt
}

func SeedAllocation(t *testing.T, db *gorm.DB, employeeID, leaveTypeID uuid.UUID, period, days int) domain.LeaveAllocation {
	t.Helper()

	a := domain.LeaveAllocation{
		EmployeeID:   employeeID,
		LeaveTypeID:  leaveTypeID,
		Period:       period,
		NumberOfDays: days,
		DateCreated:  time.Now().UTC(),
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}
