package leave

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/BavyaVasu/leave-management/internal/allocation"
	"github.com/BavyaVasu/leave-management/internal/domain"
	"github.com/BavyaVasu/leave-management/internal/events"
	leaveerrors "github.com/BavyaVasu/leave-management/internal/leave/errors"
	"github.com/BavyaVasu/leave-management/internal/messaging/kafka"
	"github.com/BavyaVasu/leave-management/internal/shared/clock"
	"github.com/BavyaVasu/leave-management/internal/shared/contextutil"
	"github.com/BavyaVasu/leave-management/internal/store"
	"github.com/BavyaVasu/leave-management/internal/uow"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, employeeID uuid.UUID, req CreateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, approverID, id uuid.UUID) (LeaveResponse, error)
	Reject(ctx context.Context, approverID, id uuid.UUID) (LeaveResponse, error)
	Cancel(ctx context.Context, actorID, id uuid.UUID) (LeaveResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (LeaveResponse, error)
	ListAll(ctx context.Context) (ListResponse, error)
	MyLeave(ctx context.Context, employeeID uuid.UUID) (MyLeaveResponse, error)
}

type service struct {
	uow    uow.Factory
	clock  clock.Clock
	logger *zap.Logger
}

func NewService(factory uow.Factory, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{uow: factory, clock: clk, logger: l}
}

// Create files a pending request against the employee's allocation for the
// current year. Nothing is stored when any check fails.
func (s *service) Create(ctx context.Context, employeeID uuid.UUID, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave request requested",
		zap.String("employee_id", employeeID.String()),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	leaveTypeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveTypeID
	}
	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("create leave request validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	work, err := s.uow.Begin(ctx)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer work.Close()

	now := s.clock.Now()
	a, err := allocation.Find(ctx, work.LeaveAllocations(), employeeID, leaveTypeID, now.Year())
	if err != nil {
		return LeaveResponse{}, err
	}

	days := domain.DaysBetween(startDate, endDate)
	if days > a.NumberOfDays {
		s.logger.Warn("create leave request insufficient balance",
			zap.String("employee_id", employeeID.String()),
			zap.Int("requested_days", days),
			zap.Int("remaining_days", a.NumberOfDays),
		)
		return LeaveResponse{}, leaveerrors.InsufficientBalance(days, a.NumberOfDays)
	}

	r := &domain.LeaveRequest{
		RequestingEmployeeID: employeeID,
		LeaveTypeID:          leaveTypeID,
		StartDate:            startDate,
		EndDate:              endDate,
		DateRequested:        now,
		RequestComments:      req.RequestComments,
	}
	if err := work.LeaveRequests().Create(ctx, r); err != nil {
		s.logger.Error("create leave request persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := s.enqueue(ctx, work, events.LeaveRequestCreated, r, employeeID, nil); err != nil {
		return LeaveResponse{}, err
	}
	if err := work.Save(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave request success",
		zap.String("leave_request_id", r.ID.String()),
		zap.String("employee_id", employeeID.String()),
		zap.Int("days", days),
	)
	return mapToResponse(*r), nil
}

// Approve debits the requester's allocation and marks the request approved
// in one commit. Both rows are locked, so the balance is checked against
// what concurrent approvals have already taken.
func (s *service) Approve(ctx context.Context, approverID, id uuid.UUID) (LeaveResponse, error) {
	s.logger.Debug("approve leave request requested",
		zap.String("leave_request_id", id.String()),
		zap.String("approver_id", approverID.String()),
	)

	work, err := s.uow.Begin(ctx)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer work.Close()

	r, err := s.lockActionable(ctx, work, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	now := s.clock.Now()
	a, err := allocation.FindForUpdate(ctx, work.LeaveAllocations(), r.RequestingEmployeeID, r.LeaveTypeID, now.Year())
	if err != nil {
		return LeaveResponse{}, err
	}

	days := r.Days()
	if days > a.NumberOfDays {
		s.logger.Warn("approve leave request insufficient balance",
			zap.String("leave_request_id", id.String()),
			zap.Int("requested_days", days),
			zap.Int("remaining_days", a.NumberOfDays),
		)
		return LeaveResponse{}, leaveerrors.InsufficientBalance(days, a.NumberOfDays)
	}

	allocation.Debit(a, days)
	if err := work.LeaveAllocations().Update(ctx, a); err != nil {
		s.logger.Error("approve leave request debit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.action(r, true, approverID, now)
	if err := work.LeaveRequests().Update(ctx, r); err != nil {
		s.logger.Error("approve leave request persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	remaining := a.NumberOfDays
	if err := s.enqueue(ctx, work, events.LeaveRequestApproved, r, approverID, &remaining); err != nil {
		return LeaveResponse{}, err
	}
	if err := work.Save(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("approve leave request success",
		zap.String("leave_request_id", id.String()),
		zap.Int("days", days),
		zap.Int("remaining_days", remaining),
	)
	return mapToResponse(*r), nil
}

// Reject closes a pending request without touching any allocation.
func (s *service) Reject(ctx context.Context, approverID, id uuid.UUID) (LeaveResponse, error) {
	s.logger.Debug("reject leave request requested",
		zap.String("leave_request_id", id.String()),
		zap.String("approver_id", approverID.String()),
	)

	work, err := s.uow.Begin(ctx)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer work.Close()

	r, err := s.lockActionable(ctx, work, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	s.action(r, false, approverID, s.clock.Now())
	if err := work.LeaveRequests().Update(ctx, r); err != nil {
		s.logger.Error("reject leave request persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := s.enqueue(ctx, work, events.LeaveRequestRejected, r, approverID, nil); err != nil {
		return LeaveResponse{}, err
	}
	if err := work.Save(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("reject leave request success", zap.String("leave_request_id", id.String()))
	return mapToResponse(*r), nil
}

// Cancel flags the caller's own request. The approval state and any debited
// days are left as they are. Cancelling twice is a no-op.
func (s *service) Cancel(ctx context.Context, actorID, id uuid.UUID) (LeaveResponse, error) {
	s.logger.Debug("cancel leave request requested",
		zap.String("leave_request_id", id.String()),
		zap.String("actor_id", actorID.String()),
	)

	work, err := s.uow.Begin(ctx)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer work.Close()

	r, err := s.lock(ctx, work, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if r.RequestingEmployeeID != actorID {
		s.logger.Warn("cancel leave request by non owner",
			zap.String("leave_request_id", id.String()),
			zap.String("actor_id", actorID.String()),
		)
		return LeaveResponse{}, leaveerrors.ErrNotRequestOwner
	}
	if r.Cancelled {
		return mapToResponse(*r), nil
	}

	r.Cancelled = true
	if err := work.LeaveRequests().Update(ctx, r); err != nil {
		s.logger.Error("cancel leave request persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := s.enqueue(ctx, work, events.LeaveRequestCancelled, r, actorID, nil); err != nil {
		return LeaveResponse{}, err
	}
	if err := work.Save(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("cancel leave request success",
		zap.String("leave_request_id", id.String()),
		zap.String("status", r.Status()),
	)
	return mapToResponse(*r), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (LeaveResponse, error) {
	work, err := s.uow.Begin(ctx)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer work.Close()

	r, err := work.LeaveRequests().Find(ctx, store.Filter{"id": id}, "LeaveType", "RequestingEmployee")
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LeaveResponse{}, leaveerrors.ErrRequestNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*r), nil
}

// ListAll returns every request, newest first, with per-state counts.
// Cancelled requests still count under their approval state.
func (s *service) ListAll(ctx context.Context) (ListResponse, error) {
	work, err := s.uow.Begin(ctx)
	if err != nil {
		return ListResponse{}, err
	}
	defer work.Close()

	requests, err := work.LeaveRequests().FindAll(ctx, nil, "LeaveType", "RequestingEmployee")
	if err != nil {
		s.logger.Error("list leave requests failed", zap.Error(err))
		return ListResponse{}, err
	}
	sortNewestFirst(requests)

	counts := RequestCounts{Total: len(requests)}
	for i := range requests {
		switch requests[i].Status() {
		case domain.StatusApproved:
			counts.Approved++
		case domain.StatusRejected:
			counts.Rejected++
		default:
			counts.Pending++
		}
	}
	return ListResponse{Counts: counts, Requests: mapToListResponse(requests)}, nil
}

// MyLeave shows the employee's allocations for the current year next to
// all of their requests.
func (s *service) MyLeave(ctx context.Context, employeeID uuid.UUID) (MyLeaveResponse, error) {
	work, err := s.uow.Begin(ctx)
	if err != nil {
		return MyLeaveResponse{}, err
	}
	defer work.Close()

	period := s.clock.Now().Year()
	allocations, err := work.LeaveAllocations().FindAll(ctx, store.Filter{
		"employee_id": employeeID,
		"period":      period,
	}, "LeaveType")
	if err != nil {
		return MyLeaveResponse{}, err
	}

	requests, err := work.LeaveRequests().FindAll(ctx, store.Filter{
		"requesting_employee_id": employeeID,
	}, "LeaveType")
	if err != nil {
		return MyLeaveResponse{}, err
	}
	sortNewestFirst(requests)

	return MyLeaveResponse{
		Period:      period,
		Allocations: allocation.ToResponses(allocations),
		Requests:    mapToListResponse(requests),
	}, nil
}

func (s *service) lock(ctx context.Context, work uow.UnitOfWork, id uuid.UUID) (*domain.LeaveRequest, error) {
	r, err := work.LeaveRequests().FindForUpdate(ctx, store.Filter{"id": id})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, leaveerrors.ErrRequestNotFound
		}
		return nil, err
	}
	return r, nil
}

// lockActionable locks a request that is still waiting for a decision.
// Cancellation does not change the approval state, but a cancelled request
// is deliberately closed to approve and reject: once the employee withdrew
// it, nobody should debit their allocation for it.
func (s *service) lockActionable(ctx context.Context, work uow.UnitOfWork, id uuid.UUID) (*domain.LeaveRequest, error) {
	r, err := s.lock(ctx, work, id)
	if err != nil {
		return nil, err
	}
	if !r.IsPending() {
		s.logger.Warn("leave request already actioned",
			zap.String("leave_request_id", id.String()),
			zap.String("status", r.Status()),
		)
		return nil, leaveerrors.ErrRequestAlreadyActioned
	}
	if r.Cancelled {
		return nil, leaveerrors.ErrRequestCancelled
	}
	return r, nil
}

func (s *service) action(r *domain.LeaveRequest, approved bool, approverID uuid.UUID, now time.Time) {
	r.Approved = &approved
	r.ApprovedByID = &approverID
	r.DateActioned = &now
}

func (s *service) enqueue(ctx context.Context, work uow.UnitOfWork, eventType string, r *domain.LeaveRequest, actorID uuid.UUID, remaining *int) error {
	md := contextutil.ExtractMetadata(ctx)
	event := events.LeaveRequestEvent{
		EventType:            eventType,
		RequestID:            md.RequestID,
		LeaveRequestID:       r.ID.String(),
		RequestingEmployeeID: r.RequestingEmployeeID.String(),
		LeaveTypeID:          r.LeaveTypeID.String(),
		StartDate:            r.StartDate.Format(dateLayout),
		EndDate:              r.EndDate.Format(dateLayout),
		Days:                 r.Days(),
		Status:               r.Status(),
		Cancelled:            r.Cancelled,
		ActorID:              actorID.String(),
		RemainingDays:        remaining,
		OccurredAt:           s.clock.Now(),
	}
	err := kafka.Enqueue(ctx, work.Outbox(), md.RequestID, "leave_request", r.ID.String(),
		eventType, events.LeaveLifecycleTopic, event)
	if err != nil {
		s.logger.Error("enqueue leave request event failed", zap.String("event_type", eventType), zap.Error(err))
	}
	return err
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func sortNewestFirst(requests []domain.LeaveRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].DateRequested.After(requests[j].DateRequested)
	})
}

func mapToResponse(r domain.LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:                   r.ID.String(),
		RequestingEmployeeID: r.RequestingEmployeeID.String(),
		LeaveTypeID:          r.LeaveTypeID.String(),
		StartDate:            r.StartDate.Format(dateLayout),
		EndDate:              r.EndDate.Format(dateLayout),
		Days:                 r.Days(),
		DateRequested:        r.DateRequested.UTC().Format(time.RFC3339),
		Approved:             r.Approved,
		Status:               r.Status(),
		RequestComments:      r.RequestComments,
		Cancelled:            r.Cancelled,
	}
	if r.RequestingEmployee != nil {
		resp.RequestingEmployeeName = r.RequestingEmployee.FullName
	}
	if r.LeaveType != nil {
		resp.LeaveTypeName = r.LeaveType.Name
	}
	if r.DateActioned != nil {
		v := r.DateActioned.UTC().Format(time.RFC3339)
		resp.DateActioned = &v
	}
	if r.ApprovedByID != nil {
		v := r.ApprovedByID.String()
		resp.ApprovedByID = &v
	}
	return resp
}

func mapToListResponse(requests []domain.LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(requests))
	for i, r := range requests {
		resp[i] = mapToResponse(r)
	}
	return resp
}
