package domain

import "github.com/google/uuid"

// EnforceRequest asks whether an employee may perform action on resource.
type EnforceRequest struct {
	EmployeeID uuid.UUID
	Resource   string
	Action     string
}
