package leavetype

type CreateLeaveTypeRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	DefaultDays *int   `json:"default_days" binding:"required,min=0"`
}

type LeaveTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DefaultDays int    `json:"default_days"`
	DateCreated string `json:"date_created"`
}
