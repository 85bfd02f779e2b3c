package service

import (
	"context"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/dto"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/repository"

	"github.com/google/uuid"
)

type EmployeeService interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error)
	AssignWorkplace(ctx context.Context, employeeID, workplaceID uuid.UUID) error
}

type employeeService struct {
	employees  repository.EmployeeRepository
	workplaces repository.WorkplaceRepository
}

func NewEmployeeService(
	employees repository.EmployeeRepository,
	workplaces repository.WorkplaceRepository,
) EmployeeService {
	return &employeeService{employees: employees, workplaces: workplaces}
}

func (s *employeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee := model.Employee{
		Name:       req.Name,
		Surname:    req.Surname,
		Patronymic: req.Patronymic,
		Phone:      req.Phone,
		Role:       req.Role,
	}
	if err := s.employees.Create(ctx, &employee); err != nil {
		return nil, err
	}
	return employeeToResponse(&employee), nil
}

func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		resp[i] = *employeeToResponse(&employees[i])
	}
	return resp, nil
}

func (s *employeeService) FindOne(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error) {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return employeeToResponse(employee), nil
}

func (s *employeeService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		employee.Name = req.Name
	}
	if req.Surname != "" {
		employee.Surname = req.Surname
	}
	if req.Patronymic != nil {
		employee.Patronymic = req.Patronymic
	}
	if req.Phone != "" {
		employee.Phone = req.Phone
	}
	if req.Role != "" {
		employee.Role = req.Role
	}
	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employeeToResponse(employee), nil
}

func (s *employeeService) Delete(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error) {
	employee, err := s.employees.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return employeeToResponse(employee), nil
}

// AssignWorkplace verifies both sides exist, then inserts the join row.
// A duplicate pair comes back as ErrConflict and the roster stays unchanged.
func (s *employeeService) AssignWorkplace(ctx context.Context, employeeID, workplaceID uuid.UUID) error {
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return err
	}
	if _, err := s.workplaces.FindByID(ctx, workplaceID); err != nil {
		return err
	}
	return s.workplaces.InsertAssignment(ctx, employeeID, workplaceID)
}

func employeeToResponse(e *model.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:         e.ID.String(),
		Name:       e.Name,
		Surname:    e.Surname,
		Patronymic: e.Patronymic,
		Phone:      e.Phone,
		Role:       e.Role,
	}
}
