package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_leave_type_name"`
	DefaultDays int       `gorm:"not null;default:0"`
	DateCreated time.Time `gorm:"not null"`
}

func (t *LeaveType) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// LeaveAllocation is the pool of days an employee holds for one leave type
// in one calendar year. At most one row exists per (employee, type, period).
type LeaveAllocation struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_allocation_period,priority:1"`
	LeaveTypeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_allocation_period,priority:2"`
	Period       int       `gorm:"not null;uniqueIndex:uq_leave_allocation_period,priority:3"`
	NumberOfDays int       `gorm:"not null"`
	DateCreated  time.Time `gorm:"not null"`

	LeaveType *LeaveType `gorm:"foreignKey:LeaveTypeID"`
	Employee  *Employee  `gorm:"foreignKey:EmployeeID"`
}

func (a *LeaveAllocation) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// LeaveRequest is pending while Approved is nil. Approved moves to true or
// false exactly once; Cancelled is independent of it.
type LeaveRequest struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RequestingEmployeeID uuid.UUID  `gorm:"type:uuid;not null;index:idx_leave_requests_employee"`
	LeaveTypeID          uuid.UUID  `gorm:"type:uuid;not null"`
	StartDate            time.Time  `gorm:"type:date;not null"`
	EndDate              time.Time  `gorm:"type:date;not null"`
	DateRequested        time.Time  `gorm:"not null"`
	DateActioned         *time.Time `gorm:"column:date_actioned"`
	Approved             *bool      `gorm:"column:approved"`
	ApprovedByID         *uuid.UUID `gorm:"type:uuid"`
	RequestComments      string     `gorm:"type:text"`
	Cancelled            bool       `gorm:"not null;default:false"`

	LeaveType          *LeaveType `gorm:"foreignKey:LeaveTypeID"`
	RequestingEmployee *Employee  `gorm:"foreignKey:RequestingEmployeeID"`
}

func (r *LeaveRequest) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *LeaveRequest) IsPending() bool {
	return r.Approved == nil
}

// Status renders the approval axis for responses and events.
func (r *LeaveRequest) Status() string {
	switch {
	case r.Approved == nil:
		return StatusPending
	case *r.Approved:
		return StatusApproved
	default:
		return StatusRejected
	}
}

// Days is the whole-day difference between the request's dates.
func (r *LeaveRequest) Days() int {
	return DaysBetween(r.StartDate, r.EndDate)
}

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

const secondsPerDay = 24 * 60 * 60

// DaysBetween counts whole calendar days from start to end, ignoring the
// time of day. Equal dates give 0.
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int((e.Unix() - s.Unix()) / secondsPerDay)
}
