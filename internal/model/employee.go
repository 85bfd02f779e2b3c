package model

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a staff member of the pizzeria.
type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"not null"`
	Surname    string    `gorm:"not null"`
	Patronymic *string
	Phone      string `gorm:"not null"`
	Role       string `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Workplaces []Workplace `gorm:"many2many:employee_workplaces;constraint:OnDelete:CASCADE"`
}

// Client is a registered customer who places orders.
type Client struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"not null"`
	Surname    string    `gorm:"not null"`
	Patronymic *string
	Phone      string `gorm:"not null"`
	Email      string `gorm:"uniqueIndex;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
