package model

import (
	"time"

	"github.com/google/uuid"
)

// WorkShift is a reusable time slot (e.g. 08:00 to 16:00).
type WorkShift struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StartTime string    `gorm:"type:varchar(8);not null"` // HH:MM:SS
	EndTime   string    `gorm:"type:varchar(8);not null"`
	CreatedAt time.Time
}

// EmployeeSchedule assigns a shift to an employee on a date. The
// (employee_id, work_date) pair is unique; re-assigning the same date
// overwrites the shift instead of erroring.
type EmployeeSchedule struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_employee_work_date;not null"`
	ShiftID    uuid.UUID `gorm:"type:uuid;not null"`
	WorkDate   time.Time `gorm:"type:date;uniqueIndex:idx_employee_work_date;not null"`

	Employee *Employee  `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Shift    *WorkShift `gorm:"foreignKey:ShiftID"`
}
