// Package schema lists the gorm models backing the service's tables.
package schema

import (
	"github.com/BavyaVasu/leave-management/internal/domain"
	"github.com/BavyaVasu/leave-management/internal/messaging/kafka"
)

// Models lists every table the service reads or writes. Postgres gets its
// schema from the goose migrations; SQLite is auto-migrated from these.
var Models = []any{
	&domain.Employee{},
	&domain.Role{},
	&domain.EmployeeRole{},
	&domain.LeaveType{},
	&domain.LeaveAllocation{},
	&domain.LeaveRequest{},
	&kafka.OutboxEvent{},
}
