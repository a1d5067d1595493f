package leave

import "github.com/BavyaVasu/leave-management/internal/allocation"

type CreateLeaveRequest struct {
	LeaveTypeID     string `json:"leave_type_id" binding:"required,uuid"`
	StartDate       string `json:"start_date" binding:"required"`
	EndDate         string `json:"end_date" binding:"required"`
	RequestComments string `json:"request_comments" binding:"max=500"`
}

type LeaveResponse struct {
	ID                     string  `json:"id"`
	RequestingEmployeeID   string  `json:"requesting_employee_id"`
	RequestingEmployeeName string  `json:"requesting_employee_name,omitempty"`
	LeaveTypeID            string  `json:"leave_type_id"`
	LeaveTypeName          string  `json:"leave_type_name,omitempty"`
	StartDate              string  `json:"start_date"`
	EndDate                string  `json:"end_date"`
	Days                   int     `json:"days"`
	DateRequested          string  `json:"date_requested"`
	DateActioned           *string `json:"date_actioned,omitempty"`
	Approved               *bool   `json:"approved"`
	Status                 string  `json:"status"`
	ApprovedByID           *string `json:"approved_by_id,omitempty"`
	RequestComments        string  `json:"request_comments,omitempty"`
	Cancelled              bool    `json:"cancelled"`
}

// RequestCounts summarises the admin index.
type RequestCounts struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
}

type ListResponse struct {
	Counts   RequestCounts   `json:"counts"`
	Requests []LeaveResponse `json:"requests"`
}

type MyLeaveResponse struct {
	Period      int                             `json:"period"`
	Allocations []allocation.AllocationResponse `json:"allocations"`
	Requests    []LeaveResponse                 `json:"requests"`
}
