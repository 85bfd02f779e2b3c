package service

import (
	"context"
	"time"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/dto"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/repository"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type ScheduleService interface {
	CreateShift(ctx context.Context, req dto.CreateShiftRequest) (*dto.ShiftResponse, error)
	ListShifts(ctx context.Context) ([]dto.ShiftResponse, error)
	AssignShift(ctx context.Context, req dto.AssignShiftRequest) (*dto.AssignmentResponse, error)
	EmployeeSchedule(ctx context.Context, employeeID uuid.UUID, filter dto.ScheduleFilter) ([]dto.ScheduleEntry, error)
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
}

type scheduleService struct {
	schedules repository.ScheduleRepository
	employees repository.EmployeeRepository
}

func NewScheduleService(
	schedules repository.ScheduleRepository,
	employees repository.EmployeeRepository,
) ScheduleService {
	return &scheduleService{schedules: schedules, employees: employees}
}

func (s *scheduleService) CreateShift(ctx context.Context, req dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	shift := model.WorkShift{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.schedules.CreateShift(ctx, &shift); err != nil {
		return nil, err
	}
	return shiftToResponse(&shift), nil
}

func (s *scheduleService) ListShifts(ctx context.Context) ([]dto.ShiftResponse, error) {
	shifts, err := s.schedules.ListShifts(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ShiftResponse, len(shifts))
	for i := range shifts {
		resp[i] = *shiftToResponse(&shifts[i])
	}
	return resp, nil
}

// AssignShift puts an employee on a shift for a given date. If the employee
// already has an assignment on that date the shift is overwritten in place.
func (s *scheduleService) AssignShift(ctx context.Context, req dto.AssignShiftRequest) (*dto.AssignmentResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	shiftID, err := uuid.Parse(req.ShiftID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	workDate, err := time.Parse(dateLayout, req.WorkDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return nil, err
	}
	if _, err := s.schedules.FindShiftByID(ctx, shiftID); err != nil {
		return nil, err
	}

	assignment := model.EmployeeSchedule{
		EmployeeID: employeeID,
		ShiftID:    shiftID,
		WorkDate:   workDate,
	}
	if err := s.schedules.UpsertAssignment(ctx, &assignment); err != nil {
		return nil, err
	}
	return &dto.AssignmentResponse{
		ID:         assignment.ID.String(),
		EmployeeID: assignment.EmployeeID.String(),
		ShiftID:    assignment.ShiftID.String(),
		WorkDate:   assignment.WorkDate.Format(dateLayout),
	}, nil
}

func (s *scheduleService) EmployeeSchedule(ctx context.Context, employeeID uuid.UUID, filter dto.ScheduleFilter) ([]dto.ScheduleEntry, error) {
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return nil, err
	}
	start, err := time.Parse(dateLayout, filter.Start)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(dateLayout, filter.End)
	if err != nil {
		return nil, err
	}

	rows, err := s.schedules.ListByEmployeeRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.ScheduleEntry, len(rows))
	for i, row := range rows {
		entries[i] = dto.ScheduleEntry{
			ID:        row.ID.String(),
			WorkDate:  row.WorkDate.Format(dateLayout),
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
		}
	}
	return entries, nil
}

func (s *scheduleService) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	return s.schedules.DeleteAssignment(ctx, id)
}

func shiftToResponse(s *model.WorkShift) *dto.ShiftResponse {
	return &dto.ShiftResponse{
		ID:        s.ID.String(),
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}
