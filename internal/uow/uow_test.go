package uow_test

import (
	"context"
	"testing"
	"time"

	"github.com/BavyaVasu/leave-management/internal/domain"
	"github.com/BavyaVasu/leave-management/internal/messaging/kafka"
	"github.com/BavyaVasu/leave-management/internal/store"
	"github.com/BavyaVasu/leave-management/internal/testutil"
	"github.com/BavyaVasu/leave-management/internal/uow"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockFactory(t *testing.T) (uow.Factory, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return uow.NewFactory(db, kafka.NewOutboxRepository(db), zap.NewNop()), mock
}

func TestUnitOfWork_Transactions(t *testing.T) {
	ctx := context.Background()

	t.Run("save commits once", func(t *testing.T) {
		factory, mock := setupMockFactory(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		work, err := factory.Begin(ctx)
		require.NoError(t, err)
		defer work.Close()

		assert.NoError(t, work.Save())
		assert.ErrorIs(t, work.Save(), uow.ErrClosed)
		assert.NoError(t, work.Close())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("close without save rolls back", func(t *testing.T) {
		factory, mock := setupMockFactory(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		work, err := factory.Begin(ctx)
		require.NoError(t, err)

		assert.NoError(t, work.Close())
		assert.NoError(t, work.Close())
		assert.ErrorIs(t, work.Save(), uow.ErrClosed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit failure is a persistence error", func(t *testing.T) {
		factory, mock := setupMockFactory(t)
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(assert.AnError)

		work, err := factory.Begin(ctx)
		require.NoError(t, err)
		defer work.Close()

		err = work.Save()
		assert.ErrorIs(t, err, uow.ErrPersistence)
		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure is a persistence error", func(t *testing.T) {
		factory, mock := setupMockFactory(t)
		mock.ExpectBegin().WillReturnError(assert.AnError)

		work, err := factory.Begin(ctx)
		assert.Nil(t, work)
		assert.ErrorIs(t, err, uow.ErrPersistence)
	})
}

func TestUnitOfWork_Visibility(t *testing.T) {
	ctx := context.Background()

	t.Run("changes are discarded on close", func(t *testing.T) {
		db := testutil.NewSQLiteDB(t)
		factory := uow.NewFactory(db, kafka.NewOutboxRepository(db), zap.NewNop())

		work, err := factory.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, work.LeaveTypes().Create(ctx, &domain.LeaveType{Name: "Sick", DefaultDays: 10, DateCreated: time.Now()}))
		require.NoError(t, work.Close())

		var count int64
		require.NoError(t, db.Model(&domain.LeaveType{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("all gateways commit together", func(t *testing.T) {
		db := testutil.NewSQLiteDB(t)
		emp := testutil.SeedEmployee(t, db, "Ana")
		factory := uow.NewFactory(db, kafka.NewOutboxRepository(db), zap.NewNop())

		work, err := factory.Begin(ctx)
		require.NoError(t, err)
		defer work.Close()

		lt := &domain.LeaveType{Name: "Vacation", DefaultDays: 20, DateCreated: time.Now()}
		require.NoError(t, work.LeaveTypes().Create(ctx, lt))
		require.NoError(t, work.LeaveAllocations().Create(ctx, &domain.LeaveAllocation{
			EmployeeID: emp.ID, LeaveTypeID: lt.ID, Period: 2024, NumberOfDays: 20, DateCreated: time.Now(),
		}))
		require.NoError(t, kafka.Enqueue(ctx, work.Outbox(), "rid", "leave_type", lt.ID.String(), "leave_type.created", "topic", map[string]string{"id": lt.ID.String()}))
		require.NoError(t, work.Save())

		exists, err := store.New[domain.LeaveAllocation](db).Exists(ctx, store.Filter{"employee_id": emp.ID})
		require.NoError(t, err)
		assert.True(t, exists)

		var outbox []kafka.OutboxEvent
		require.NoError(t, db.Find(&outbox).Error)
		assert.Len(t, outbox, 1)
	})
}
