package allocation

import (
	"context"
	"errors"

	allocationerrors "github.com/BavyaVasu/leave-management/internal/allocation/errors"
	"github.com/BavyaVasu/leave-management/internal/domain"
	"github.com/BavyaVasu/leave-management/internal/store"

	"github.com/google/uuid"
)

func periodFilter(employeeID, leaveTypeID uuid.UUID, period int) store.Filter {
	return store.Filter{
		"employee_id":   employeeID,
		"leave_type_id": leaveTypeID,
		"period":        period,
	}
}

// Find loads the allocation for (employee, type, period) through gw, which
// belongs to the caller's unit of work.
func Find(ctx context.Context, gw store.Gateway[domain.LeaveAllocation], employeeID, leaveTypeID uuid.UUID, period int) (*domain.LeaveAllocation, error) {
	a, err := gw.Find(ctx, periodFilter(employeeID, leaveTypeID, period))
	if errors.Is(err, store.ErrNotFound) {
		return nil, allocationerrors.ErrAllocationNotFound
	}
	return a, err
}

// FindForUpdate is Find with a row lock held until the unit of work ends.
func FindForUpdate(ctx context.Context, gw store.Gateway[domain.LeaveAllocation], employeeID, leaveTypeID uuid.UUID, period int) (*domain.LeaveAllocation, error) {
	a, err := gw.FindForUpdate(ctx, periodFilter(employeeID, leaveTypeID, period))
	if errors.Is(err, store.ErrNotFound) {
		return nil, allocationerrors.ErrAllocationNotFound
	}
	return a, err
}

// Debit takes days off the allocation. Callers check the balance first.
func Debit(a *domain.LeaveAllocation, days int) {
	a.NumberOfDays -= days
}
