package domain_test

import (
	"testing"
	"time"

	"github.com/BavyaVasu/leave-management/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 4, domain.DaysBetween(date("2024-06-01"), date("2024-06-05")))
	assert.Equal(t, 19, domain.DaysBetween(date("2024-07-01"), date("2024-07-20")))
	assert.Equal(t, 0, domain.DaysBetween(date("2024-06-01"), date("2024-06-01")))
	assert.Equal(t, 1, domain.DaysBetween(date("2024-02-28"), date("2024-02-29")))

	start := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, 1, domain.DaysBetween(start, end))
}

func TestDaysBetween_SpansBeyondDurationRange(t *testing.T) {
	assert.Equal(t, 146097, domain.DaysBetween(date("2000-01-01"), date("2400-01-01")))
	assert.Equal(t, 3652058, domain.DaysBetween(date("0001-01-01"), date("9999-12-31")))
	assert.Equal(t, -3652058, domain.DaysBetween(date("9999-12-31"), date("0001-01-01")))
}

func TestLeaveRequest_Status(t *testing.T) {
	yes, no := true, false
	assert.Equal(t, domain.StatusPending, (&domain.LeaveRequest{}).Status())
	assert.Equal(t, domain.StatusApproved, (&domain.LeaveRequest{Approved: &yes}).Status())
	assert.Equal(t, domain.StatusRejected, (&domain.LeaveRequest{Approved: &no}).Status())
	assert.True(t, (&domain.LeaveRequest{}).IsPending())
}
