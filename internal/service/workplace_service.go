package service

import (
	"context"
	"fmt"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/dto"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkplaceService interface {
	Create(ctx context.Context, req dto.CreateWorkplaceRequest) (*dto.WorkplaceResponse, error)
	List(ctx context.Context) ([]dto.WorkplaceResponse, error)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.WorkplaceResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateWorkplaceRequest) (*dto.WorkplaceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.WorkplaceResponse, error)
	ListRoster(ctx context.Context, workplaceID uuid.UUID) ([]dto.EmployeeResponse, error)
	ReplaceRoster(ctx context.Context, workplaceID uuid.UUID, employeeIDs []uuid.UUID) ([]dto.EmployeeResponse, error)
}

type workplaceService struct {
	workplaces repository.WorkplaceRepository
	employees  repository.EmployeeRepository
}

func NewWorkplaceService(
	workplaces repository.WorkplaceRepository,
	employees repository.EmployeeRepository,
) WorkplaceService {
	return &workplaceService{workplaces: workplaces, employees: employees}
}

func (s *workplaceService) Create(ctx context.Context, req dto.CreateWorkplaceRequest) (*dto.WorkplaceResponse, error) {
	status := req.Status
	if status == "" {
		status = model.WorkplaceFree
	}
	workplace := model.Workplace{
		Name:     req.Name,
		Status:   status,
		Capacity: req.Capacity,
	}
	if err := s.workplaces.Create(ctx, &workplace); err != nil {
		return nil, err
	}
	return workplaceToResponse(&workplace), nil
}

func (s *workplaceService) List(ctx context.Context) ([]dto.WorkplaceResponse, error) {
	workplaces, err := s.workplaces.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.WorkplaceResponse, len(workplaces))
	for i := range workplaces {
		resp[i] = *workplaceToResponse(&workplaces[i])
	}
	return resp, nil
}

func (s *workplaceService) FindOne(ctx context.Context, id uuid.UUID) (*dto.WorkplaceResponse, error) {
	workplace, err := s.workplaces.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return workplaceToResponse(workplace), nil
}

func (s *workplaceService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateWorkplaceRequest) (*dto.WorkplaceResponse, error) {
	workplace, err := s.workplaces.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		workplace.Name = req.Name
	}
	if req.Status != "" {
		workplace.Status = req.Status
	}
	if req.Capacity != nil {
		workplace.Capacity = *req.Capacity
	}
	if err := s.workplaces.Update(ctx, workplace); err != nil {
		return nil, err
	}
	return workplaceToResponse(workplace), nil
}

func (s *workplaceService) Delete(ctx context.Context, id uuid.UUID) (*dto.WorkplaceResponse, error) {
	workplace, err := s.workplaces.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return workplaceToResponse(workplace), nil
}

func (s *workplaceService) ListRoster(ctx context.Context, workplaceID uuid.UUID) ([]dto.EmployeeResponse, error) {
	if _, err := s.workplaces.FindByID(ctx, workplaceID); err != nil {
		return nil, err
	}
	roster, err := s.workplaces.ListRoster(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EmployeeResponse, len(roster))
	for i := range roster {
		resp[i] = *employeeToResponse(&roster[i])
	}
	return resp, nil
}

// ReplaceRoster validates the workplace and every employee id up front, then
// clears and re-inserts the full roster in one transaction.
func (s *workplaceService) ReplaceRoster(ctx context.Context, workplaceID uuid.UUID, employeeIDs []uuid.UUID) ([]dto.EmployeeResponse, error) {
	if _, err := s.workplaces.FindByID(ctx, workplaceID); err != nil {
		return nil, err
	}

	employees, err := s.employees.FindByIDs(ctx, employeeIDs)
	if err != nil {
		return nil, err
	}
	found := make(map[uuid.UUID]bool, len(employees))
	for _, e := range employees {
		found[e.ID] = true
	}
	for _, id := range employeeIDs {
		if !found[id] {
			return nil, fmt.Errorf("employee %s: %w", id, repository.ErrNotFound)
		}
	}

	txErr := runTx(ctx, s.workplaces.DB(), func(tx *gorm.DB) error {
		if err := s.workplaces.ClearRosterTx(ctx, tx, workplaceID); err != nil {
			return err
		}
		for _, id := range employeeIDs {
			if err := s.workplaces.InsertAssignmentTx(ctx, tx, id, workplaceID); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		resp[i] = *employeeToResponse(&employees[i])
	}
	return resp, nil
}

func workplaceToResponse(w *model.Workplace) *dto.WorkplaceResponse {
	return &dto.WorkplaceResponse{
		ID:       w.ID.String(),
		Name:     w.Name,
		Status:   w.Status,
		Capacity: w.Capacity,
	}
}
