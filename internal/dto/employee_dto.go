package dto

type CreateEmployeeRequest struct {
	Name       string  `json:"name"       validate:"required"`
	Surname    string  `json:"surname"    validate:"required"`
	Patronymic *string `json:"patronymic" validate:"omitempty"`
	Phone      string  `json:"phone"      validate:"required,e164"`
	Role       string  `json:"role"       validate:"required,oneof=MANAGER PIZZAMAKER CASHIER"`
}

type UpdateEmployeeRequest struct {
	Name       string  `json:"name"       validate:"omitempty"`
	Surname    string  `json:"surname"    validate:"omitempty"`
	Patronymic *string `json:"patronymic" validate:"omitempty"`
	Phone      string  `json:"phone"      validate:"omitempty,e164"`
	Role       string  `json:"role"       validate:"omitempty,oneof=MANAGER PIZZAMAKER CASHIER"`
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Surname    string  `json:"surname"`
	Patronymic *string `json:"patronymic,omitempty"`
	Phone      string  `json:"phone"`
	Role       string  `json:"role"`
}

// AssignWorkplaceRequest attaches an employee to a workplace.
type AssignWorkplaceRequest struct {
	WorkplaceID string `json:"workplace_id" validate:"required,uuid"`
}
