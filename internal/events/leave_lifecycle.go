package events

import "time"

const LeaveLifecycleTopic = "hr.leave.lifecycle.v1"

const (
	LeaveRequestCreated       = "leave_request.created"
	LeaveRequestApproved      = "leave_request.approved"
	LeaveRequestRejected      = "leave_request.rejected"
	LeaveRequestCancelled     = "leave_request.cancelled"
	LeaveAllocationsGenerated = "leave_allocation.generated"
)

type LeaveRequestEvent struct {
	EventType            string    `json:"event_type"`
	RequestID            string    `json:"request_id,omitempty"`
	LeaveRequestID       string    `json:"leave_request_id"`
	RequestingEmployeeID string    `json:"requesting_employee_id"`
	LeaveTypeID          string    `json:"leave_type_id"`
	StartDate            string    `json:"start_date"`
	EndDate              string    `json:"end_date"`
	Days                 int       `json:"days"`
	Status               string    `json:"status"`
	Cancelled            bool      `json:"cancelled"`
	ActorID              string    `json:"actor_id,omitempty"`
	RemainingDays        *int      `json:"remaining_days,omitempty"`
	OccurredAt           time.Time `json:"occurred_at"`
}

type LeaveAllocationsGeneratedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	LeaveTypeID string    `json:"leave_type_id,omitempty"`
	EmployeeID  string    `json:"employee_id,omitempty"`
	Period      int       `json:"period"`
	Created     int       `json:"created"`
	Skipped     int       `json:"skipped"`
	OccurredAt  time.Time `json:"occurred_at"`
}
