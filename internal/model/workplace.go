package model

import (
	"time"

	"github.com/google/uuid"
)

// Workplace occupancy states.
const (
	WorkplaceFree           = "free"
	WorkplaceOccupied       = "occupied"
	WorkplacePartlyOccupied = "partly_occupied"
)

// Workplace is a station (kitchen line, register, …) employees are assigned to.
type Workplace struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'free'"`
	Capacity  int       `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Employees []Employee `gorm:"many2many:employee_workplaces;constraint:OnDelete:CASCADE"`
}

// EmployeeWorkplace is the assignment join row. The pair is unique: assigning
// the same employee to the same workplace twice is a conflict.
type EmployeeWorkplace struct {
	EmployeeID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkplaceID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (EmployeeWorkplace) TableName() string { return "employee_workplaces" }
