package dto

type CreateWorkplaceRequest struct {
	Name     string `json:"name"     validate:"required"`
	Status   string `json:"status"   validate:"omitempty,oneof=free occupied partly_occupied"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
}

type UpdateWorkplaceRequest struct {
	Name     string `json:"name"     validate:"omitempty"`
	Status   string `json:"status"   validate:"omitempty,oneof=free occupied partly_occupied"`
	Capacity *int   `json:"capacity" validate:"omitempty,min=1"`
}

type WorkplaceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Capacity int    `json:"capacity"`
}

// ReplaceRosterRequest atomically swaps the full set of employees assigned
// to a workplace.
type ReplaceRosterRequest struct {
	EmployeeIDs []string `json:"employee_ids" validate:"required,dive,uuid"`
}
