package events

import "time"

// EmployeeCreatedTopic is published by the identity directory.
const EmployeeCreatedTopic = "hr.employee.lifecycle.v1"

const EmployeeCreatedEventType = "employee_created"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
