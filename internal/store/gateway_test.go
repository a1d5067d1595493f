package store_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/BavyaVasu/leave-management/internal/domain"
	"github.com/BavyaVasu/leave-management/internal/store"
	"github.com/BavyaVasu/leave-management/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestGateway_SQLite(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find with preload", func(t *testing.T) {
		db := testutil.NewSQLiteDB(t)
		emp := testutil.SeedEmployee(t, db, "Ana")
		lt := testutil.SeedLeaveType(t, db, "Vacation", 20)

		gw := store.New[domain.LeaveAllocation](db)
		alloc := &domain.LeaveAllocation{
			EmployeeID:   emp.ID,
			LeaveTypeID:  lt.ID,
			Period:       2024,
			NumberOfDays: 20,
			DateCreated:  time.Now().UTC(),
		}
		require.NoError(t, gw.Create(ctx, alloc))
		assert.NotEqual(t, uuid.Nil, alloc.ID)

		got, err := gw.Find(ctx, store.Filter{"employee_id": emp.ID, "period": 2024}, "LeaveType")
		require.NoError(t, err)
		assert.Equal(t, 20, got.NumberOfDays)
		require.NotNil(t, got.LeaveType)
		assert.Equal(t, "Vacation", got.LeaveType.Name)
	})

	t.Run("find returns ErrNotFound", func(t *testing.T) {
		db := testutil.NewSQLiteDB(t)
		gw := store.New[domain.LeaveType](db)

		_, err := gw.Find(ctx, store.Filter{"id": uuid.New()})
		assert.ErrorIs(t, err, store.ErrNotFound)

		_, err = gw.FindForUpdate(ctx, store.Filter{"id": uuid.New()})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unique violation returns ErrDuplicate", func(t *testing.T) {
		db := testutil.NewSQLiteDB(t)
		emp := testutil.SeedEmployee(t, db, "Ana")
		lt := testutil.SeedLeaveType(t, db, "Vacation", 20)
		testutil.SeedAllocation(t, db, emp.ID, lt.ID, 2024, 20)

		gw := store.New[domain.LeaveAllocation](db)
		err := gw.Create(ctx, &domain.LeaveAllocation{
			EmployeeID:   emp.ID,
			LeaveTypeID:  lt.ID,
			Period:       2024,
			NumberOfDays: 5,
			DateCreated:  time.Now().UTC(),
		})
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("find all with empty and nil filters", func(t *testing.T) {
		db := testutil.NewSQLiteDB(t)
		emp := testutil.SeedEmployee(t, db, "Ana")
		lt := testutil.SeedLeaveType(t, db, "Vacation", 20)

		gw := store.New[domain.LeaveRequest](db)
		approved := true
		now := time.Now().UTC()
		require.NoError(t, gw.Create(ctx, &domain.LeaveRequest{
			RequestingEmployeeID: emp.ID, LeaveTypeID: lt.ID,
			StartDate: now, EndDate: now, DateRequested: now,
		}))
		require.NoError(t, gw.Create(ctx, &domain.LeaveRequest{
			RequestingEmployeeID: emp.ID, LeaveTypeID: lt.ID,
			StartDate: now, EndDate: now, DateRequested: now, Approved: &approved,
		}))

		all, err := gw.FindAll(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		pending, err := gw.FindAll(ctx, store.Filter{"approved": nil})
		require.NoError(t, err)
		assert.Len(t, pending, 1)

		exists, err := gw.Exists(ctx, store.Filter{"requesting_employee_id": emp.ID})
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = gw.Exists(ctx, store.Filter{"requesting_employee_id": uuid.New()})
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("update does not cascade associations", func(t *testing.T) {
		db := testutil.NewSQLiteDB(t)
		emp := testutil.SeedEmployee(t, db, "Ana")
		lt := testutil.SeedLeaveType(t, db, "Vacation", 20)
		seeded := testutil.SeedAllocation(t, db, emp.ID, lt.ID, 2024, 20)

		gw := store.New[domain.LeaveAllocation](db)
		alloc, err := gw.Find(ctx, store.Filter{"id": seeded.ID}, "LeaveType")
		require.NoError(t, err)

		alloc.NumberOfDays = 16
		alloc.LeaveType.Name = "Renamed"
		require.NoError(t, gw.Update(ctx, alloc))

		var reloaded domain.LeaveType
		require.NoError(t, db.First(&reloaded, "id = ?", lt.ID).Error)
		assert.Equal(t, "Vacation", reloaded.Name)

		got, err := gw.Find(ctx, store.Filter{"id": seeded.ID})
		require.NoError(t, err)
		assert.Equal(t, 16, got.NumberOfDays)
	})

	t.Run("delete", func(t *testing.T) {
		db := testutil.NewSQLiteDB(t)
		lt := testutil.SeedLeaveType(t, db, "Vacation", 20)

		gw := store.New[domain.LeaveType](db)
		require.NoError(t, gw.Delete(ctx, &lt))

		_, err := gw.Find(ctx, store.Filter{"id": lt.ID})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func newPostgresMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	return db, mock
}

func TestGateway_FindForUpdateLocksRow(t *testing.T) {
	db, mock := newPostgresMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "number_of_days", "period"}).
			AddRow(id.String(), 16, 2024))

	gw := store.New[domain.LeaveAllocation](db)
	got, err := gw.FindForUpdate(context.Background(), store.Filter{"id": id})

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, 16, got.NumberOfDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGateway_FindAllSurfacesQueryError(t *testing.T) {
	db, mock := newPostgresMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "leave_types"`)).
		WillReturnError(assert.AnError)

	gw := store.New[domain.LeaveType](db)
	_, err := gw.FindAll(context.Background(), nil)

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
