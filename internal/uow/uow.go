package uow

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/BavyaVasu/leave-management/internal/domain"
	"github.com/BavyaVasu/leave-management/internal/messaging/kafka"
	"github.com/BavyaVasu/leave-management/internal/shared/apperror"
	"github.com/BavyaVasu/leave-management/internal/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrClosed = errors.New("uow: unit of work already closed")

	// ErrPersistence is returned when Begin or Save fails. Nothing was applied.
	ErrPersistence = apperror.ErrPersistence
)

//go:generate mockgen -source=uow.go -destination=mock/uow_mock.go -package=mock
type Factory interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}

// UnitOfWork stages changes on every gateway inside one transaction.
// Callers defer Close right after Begin; Save commits.
type UnitOfWork interface {
	LeaveTypes() store.Gateway[domain.LeaveType]
	LeaveAllocations() store.Gateway[domain.LeaveAllocation]
	LeaveRequests() store.Gateway[domain.LeaveRequest]
	Outbox() kafka.OutboxRepository
	Save() error
	Close() error
}

type factory struct {
	db     *gorm.DB
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewFactory(db *gorm.DB, outbox kafka.OutboxRepository, logger ...*zap.Logger) Factory {
	l := zap.L().Named("uow")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("uow")
	}
	return &factory{db: db, outbox: outbox, logger: l}
}

func (f *factory) Begin(ctx context.Context) (UnitOfWork, error) {
	tx := f.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		f.logger.Error("begin transaction failed", zap.Error(tx.Error))
		return nil, apperror.Persistence(tx.Error)
	}

	return &unitOfWork{
		tx:          tx,
		logger:      f.logger,
		types:       store.New[domain.LeaveType](tx),
		allocations: store.New[domain.LeaveAllocation](tx),
		requests:    store.New[domain.LeaveRequest](tx),
		outbox:      f.outbox.WithTx(tx),
	}, nil
}

type unitOfWork struct {
	mu     sync.Mutex
	tx     *gorm.DB
	closed bool
	logger *zap.Logger

	types       store.Gateway[domain.LeaveType]
	allocations store.Gateway[domain.LeaveAllocation]
	requests    store.Gateway[domain.LeaveRequest]
	outbox      kafka.OutboxRepository
}

func (u *unitOfWork) LeaveTypes() store.Gateway[domain.LeaveType] {
	return u.types
}

func (u *unitOfWork) LeaveAllocations() store.Gateway[domain.LeaveAllocation] {
	return u.allocations
}

func (u *unitOfWork) LeaveRequests() store.Gateway[domain.LeaveRequest] {
	return u.requests
}

func (u *unitOfWork) Outbox() kafka.OutboxRepository {
	return u.outbox
}

// Save commits every staged change. It can succeed at most once.
func (u *unitOfWork) Save() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return ErrClosed
	}
	u.closed = true

	if err := u.tx.Commit().Error; err != nil {
		u.logger.Error("commit transaction failed", zap.Error(err))
		_ = u.tx.Rollback().Error
		return apperror.Persistence(err)
	}
	return nil
}

// Close rolls back anything not saved. Calling it after Save is a no-op.
func (u *unitOfWork) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return nil
	}
	u.closed = true

	err := u.tx.Rollback().Error
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		u.logger.Warn("rollback transaction failed", zap.Error(err))
		return err
	}
	return nil
}
