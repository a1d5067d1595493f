package allocation

type GenerateAllocationRequest struct {
	Period *int `json:"period" binding:"omitempty,min=1"`
}

type UpdateAllocationRequest struct {
	NumberOfDays *int `json:"number_of_days" binding:"required,min=0"`
}

type GenerateResult struct {
	LeaveTypeID string `json:"leave_type_id,omitempty"`
	EmployeeID  string `json:"employee_id,omitempty"`
	Period      int    `json:"period"`
	Created     int    `json:"created"`
	Skipped     int    `json:"skipped"`
}

type AllocationResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name,omitempty"`
	Period        int    `json:"period"`
	NumberOfDays  int    `json:"number_of_days"`
	DateCreated   string `json:"date_created"`
}

type EmployeeResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
