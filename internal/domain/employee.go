package domain

import "github.com/google/uuid"

// Employee is owned by the identity directory. This service only reads it.
type Employee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string
	Email    string
}

// Role and EmployeeRole mirror the directory's role membership tables.
type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(64);uniqueIndex"`
}

type EmployeeRole struct {
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID     uuid.UUID `gorm:"type:uuid;primaryKey"`
}
