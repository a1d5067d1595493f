package allocation

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	allocationerrors "github.com/BavyaVasu/leave-management/internal/allocation/errors"
	"github.com/BavyaVasu/leave-management/internal/domain"
	"github.com/BavyaVasu/leave-management/internal/events"
	"github.com/BavyaVasu/leave-management/internal/identity"
	leavetypeerrors "github.com/BavyaVasu/leave-management/internal/leavetype/errors"
	"github.com/BavyaVasu/leave-management/internal/messaging/kafka"
	"github.com/BavyaVasu/leave-management/internal/shared/clock"
	"github.com/BavyaVasu/leave-management/internal/shared/contextutil"
	"github.com/BavyaVasu/leave-management/internal/store"
	"github.com/BavyaVasu/leave-management/internal/uow"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=allocation_service.go -destination=mock/allocation_service_mock.go -package=mock
type Service interface {
	GenerateYearlyAllocation(ctx context.Context, leaveTypeID uuid.UUID, period int) (GenerateResult, error)
	GenerateForEmployee(ctx context.Context, employeeID uuid.UUID, period int) (GenerateResult, error)
	GetAllocation(ctx context.Context, employeeID, leaveTypeID uuid.UUID, period int) (AllocationResponse, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, period int) ([]AllocationResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	UpdateNumberOfDays(ctx context.Context, allocationID uuid.UUID, days int) (AllocationResponse, error)
	CurrentPeriod() int
}

type service struct {
	uow          uow.Factory
	directory    identity.Directory
	clock        clock.Clock
	employeeRole string
	logger       *zap.Logger
}

// NewService takes the name of the directory role whose members receive
// allocations.
func NewService(factory uow.Factory, directory identity.Directory, clk clock.Clock, employeeRole string, logger ...*zap.Logger) Service {
	l := zap.L().Named("allocation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("allocation.service")
	}
	return &service{
		uow:          factory,
		directory:    directory,
		clock:        clk,
		employeeRole: employeeRole,
		logger:       l,
	}
}

func (s *service) CurrentPeriod() int {
	return s.clock.Now().Year()
}

// GenerateYearlyAllocation gives every member of the employee role an
// allocation of the type's default days for period. Employees who already
// hold one are skipped, so running it again creates nothing. All rows are
// committed together.
func (s *service) GenerateYearlyAllocation(ctx context.Context, leaveTypeID uuid.UUID, period int) (GenerateResult, error) {
	s.logger.Debug("generate yearly allocation requested",
		zap.String("leave_type_id", leaveTypeID.String()),
		zap.Int("period", period),
	)
	if period < 1 {
		return GenerateResult{}, allocationerrors.ErrInvalidPeriod
	}

	employeeIDs, err := s.directory.ListUsersInRole(ctx, s.employeeRole)
	if err != nil {
		s.logger.Error("generate yearly allocation list employees failed", zap.Error(err))
		return GenerateResult{}, err
	}

	work, err := s.uow.Begin(ctx)
	if err != nil {
		return GenerateResult{}, err
	}
	defer work.Close()

	lt, err := work.LeaveTypes().Find(ctx, store.Filter{"id": leaveTypeID})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return GenerateResult{}, leavetypeerrors.ErrLeaveTypeNotFound
		}
		return GenerateResult{}, err
	}

	existing, err := work.LeaveAllocations().FindAll(ctx, store.Filter{
		"leave_type_id": leaveTypeID,
		"period":        period,
	})
	if err != nil {
		s.logger.Error("generate yearly allocation load existing failed", zap.Error(err))
		return GenerateResult{}, err
	}
	allocated := make(map[uuid.UUID]struct{}, len(existing))
	for _, a := range existing {
		allocated[a.EmployeeID] = struct{}{}
	}

	result := GenerateResult{LeaveTypeID: leaveTypeID.String(), Period: period}
	now := s.clock.Now()
	for _, employeeID := range employeeIDs {
		if _, ok := allocated[employeeID]; ok {
			result.Skipped++
			continue
		}
		a := &domain.LeaveAllocation{
			EmployeeID:   employeeID,
			LeaveTypeID:  lt.ID,
			Period:       period,
			NumberOfDays: lt.DefaultDays,
			DateCreated:  now,
		}
		if err := work.LeaveAllocations().Create(ctx, a); err != nil {
			return GenerateResult{}, s.mapCreateError(err)
		}
		allocated[employeeID] = struct{}{}
		result.Created++
	}

	if err := s.enqueueGenerated(ctx, work, lt.ID.String(), result); err != nil {
		return GenerateResult{}, err
	}

	if err := work.Save(); err != nil {
		return GenerateResult{}, err
	}

	s.logger.Info("generate yearly allocation success",
		zap.String("leave_type_id", leaveTypeID.String()),
		zap.Int("period", period),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// GenerateForEmployee allocates every leave type to one employee for period.
func (s *service) GenerateForEmployee(ctx context.Context, employeeID uuid.UUID, period int) (GenerateResult, error) {
	s.logger.Debug("generate employee allocation requested",
		zap.String("employee_id", employeeID.String()),
		zap.Int("period", period),
	)
	if period < 1 {
		return GenerateResult{}, allocationerrors.ErrInvalidPeriod
	}

	if _, err := s.directory.FindEmployeeByID(ctx, employeeID); err != nil {
		return GenerateResult{}, err
	}

	work, err := s.uow.Begin(ctx)
	if err != nil {
		return GenerateResult{}, err
	}
	defer work.Close()

	types, err := work.LeaveTypes().FindAll(ctx, nil)
	if err != nil {
		return GenerateResult{}, err
	}

	existing, err := work.LeaveAllocations().FindAll(ctx, store.Filter{
		"employee_id": employeeID,
		"period":      period,
	})
	if err != nil {
		return GenerateResult{}, err
	}
	allocated := make(map[uuid.UUID]struct{}, len(existing))
	for _, a := range existing {
		allocated[a.LeaveTypeID] = struct{}{}
	}

	result := GenerateResult{EmployeeID: employeeID.String(), Period: period}
	now := s.clock.Now()
	for _, lt := range types {
		if _, ok := allocated[lt.ID]; ok {
			result.Skipped++
			continue
		}
		a := &domain.LeaveAllocation{
			EmployeeID:   employeeID,
			LeaveTypeID:  lt.ID,
			Period:       period,
			NumberOfDays: lt.DefaultDays,
			DateCreated:  now,
		}
		if err := work.LeaveAllocations().Create(ctx, a); err != nil {
			return GenerateResult{}, s.mapCreateError(err)
		}
		result.Created++
	}

	if result.Created > 0 {
		if err := s.enqueueGenerated(ctx, work, employeeID.String(), result); err != nil {
			return GenerateResult{}, err
		}
	}

	if err := work.Save(); err != nil {
		return GenerateResult{}, err
	}

	s.logger.Info("generate employee allocation success",
		zap.String("employee_id", employeeID.String()),
		zap.Int("period", period),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (s *service) mapCreateError(err error) error {
	if errors.Is(err, store.ErrDuplicate) {
		s.logger.Warn("allocation created concurrently", zap.Error(err))
		return allocationerrors.ErrAllocationConflict
	}
	s.logger.Error("create allocation failed", zap.Error(err))
	return err
}

func (s *service) enqueueGenerated(ctx context.Context, work uow.UnitOfWork, aggregateID string, result GenerateResult) error {
	md := contextutil.ExtractMetadata(ctx)
	event := events.LeaveAllocationsGeneratedEvent{
		EventType:   events.LeaveAllocationsGenerated,
		RequestID:   md.RequestID,
		LeaveTypeID: result.LeaveTypeID,
		EmployeeID:  result.EmployeeID,
		Period:      result.Period,
		Created:     result.Created,
		Skipped:     result.Skipped,
		OccurredAt:  s.clock.Now(),
	}
	err := kafka.Enqueue(ctx, work.Outbox(), md.RequestID, "leave_allocation", aggregateID,
		events.LeaveAllocationsGenerated, events.LeaveLifecycleTopic, event)
	if err != nil {
		s.logger.Error("enqueue allocation event failed", zap.Error(err))
	}
	return err
}

func (s *service) GetAllocation(ctx context.Context, employeeID, leaveTypeID uuid.UUID, period int) (AllocationResponse, error) {
	work, err := s.uow.Begin(ctx)
	if err != nil {
		return AllocationResponse{}, err
	}
	defer work.Close()

	a, err := Find(ctx, work.LeaveAllocations(), employeeID, leaveTypeID, period)
	if err != nil {
		return AllocationResponse{}, err
	}
	return mapToResponse(*a), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID uuid.UUID, period int) ([]AllocationResponse, error) {
	work, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer work.Close()

	allocations, err := work.LeaveAllocations().FindAll(ctx, store.Filter{
		"employee_id": employeeID,
		"period":      period,
	}, "LeaveType")
	if err != nil {
		s.logger.Error("list allocations failed", zap.String("employee_id", employeeID.String()), zap.Error(err))
		return nil, err
	}

	sort.Slice(allocations, func(i, j int) bool {
		return strings.ToLower(leaveTypeName(allocations[i])) < strings.ToLower(leaveTypeName(allocations[j]))
	})
	return ToResponses(allocations), nil
}

func (s *service) ListEmployees(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.directory.ListEmployeesInRole(ctx, s.employeeRole)
	if err != nil {
		return nil, err
	}

	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = EmployeeResponse{ID: e.ID.String(), FullName: e.FullName, Email: e.Email}
	}
	return resp, nil
}

// UpdateNumberOfDays overwrites the remaining days of one allocation.
func (s *service) UpdateNumberOfDays(ctx context.Context, allocationID uuid.UUID, days int) (AllocationResponse, error) {
	s.logger.Debug("update allocation requested",
		zap.String("allocation_id", allocationID.String()),
		zap.Int("number_of_days", days),
	)
	if days < 0 {
		return AllocationResponse{}, allocationerrors.ErrInvalidNumberOfDays
	}

	work, err := s.uow.Begin(ctx)
	if err != nil {
		return AllocationResponse{}, err
	}
	defer work.Close()

	a, err := work.LeaveAllocations().FindForUpdate(ctx, store.Filter{"id": allocationID})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AllocationResponse{}, allocationerrors.ErrAllocationNotFound
		}
		return AllocationResponse{}, err
	}

	previous := a.NumberOfDays
	a.NumberOfDays = days
	if err := work.LeaveAllocations().Update(ctx, a); err != nil {
		s.logger.Error("update allocation persist failed", zap.Error(err))
		return AllocationResponse{}, err
	}
	if err := work.Save(); err != nil {
		return AllocationResponse{}, err
	}

	s.logger.Info("update allocation success",
		zap.String("allocation_id", allocationID.String()),
		zap.Int("previous_days", previous),
		zap.Int("number_of_days", days),
	)
	return mapToResponse(*a), nil
}

func leaveTypeName(a domain.LeaveAllocation) string {
	if a.LeaveType == nil {
		return ""
	}
	return a.LeaveType.Name
}

func mapToResponse(a domain.LeaveAllocation) AllocationResponse {
	return AllocationResponse{
		ID:            a.ID.String(),
		EmployeeID:    a.EmployeeID.String(),
		LeaveTypeID:   a.LeaveTypeID.String(),
		LeaveTypeName: leaveTypeName(a),
		Period:        a.Period,
		NumberOfDays:  a.NumberOfDays,
		DateCreated:   a.DateCreated.UTC().Format(time.RFC3339),
	}
}

// ToResponses renders allocations in the shape the HTTP surface returns.
func ToResponses(allocations []domain.LeaveAllocation) []AllocationResponse {
	resp := make([]AllocationResponse, len(allocations))
	for i, a := range allocations {
		resp[i] = mapToResponse(a)
	}
	return resp
}
