package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles form a closed enumeration; every mutating route declares an
// allow-list drawn from these values.
const (
	RoleAdmin      = "ADMIN"
	RoleManager    = "MANAGER"
	RolePizzamaker = "PIZZAMAKER"
	RoleCashier    = "CASHIER"
	RoleClient     = "CLIENT"
)

// User is an authentication principal. Exactly one of EmployeeID/ClientID
// is set: staff accounts point at an Employee row, customer accounts at a
// Client row.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	EmployeeID   *uuid.UUID `gorm:"type:uuid;index"`
	ClientID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Employee *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Client   *Client   `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}
