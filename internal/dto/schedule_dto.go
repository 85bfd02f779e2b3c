package dto

type CreateShiftRequest struct {
	StartTime string `json:"start_time" validate:"required,datetime=15:04:05"`
	EndTime   string `json:"end_time"   validate:"required,datetime=15:04:05"`
}

type ShiftResponse struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AssignShiftRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
	ShiftID    string `json:"shift_id"    validate:"required,uuid"`
	WorkDate   string `json:"work_date"   validate:"required,datetime=2006-01-02"`
}

type AssignmentResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	ShiftID    string `json:"shift_id"`
	WorkDate   string `json:"work_date"`
}

// ScheduleEntry is one day of an employee's schedule with the shift
// times already joined in.
type ScheduleEntry struct {
	ID        string `json:"id"`
	WorkDate  string `json:"work_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ScheduleFilter is bound from the query string of GET /employee-schedules/employee/:id.
type ScheduleFilter struct {
	Start string `form:"start" validate:"required,datetime=2006-01-02"`
	End   string `form:"end"   validate:"required,datetime=2006-01-02"`
}
