package service

import (
	"context"
	"testing"
	"time"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/dto"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type assignmentKey struct {
	employeeID uuid.UUID
	workDate   string
}

// stubScheduleRepo mimics the (employee_id, work_date) upsert semantics.
type stubScheduleRepo struct {
	shifts      map[uuid.UUID]*model.WorkShift
	assignments map[assignmentKey]*model.EmployeeSchedule
}

func newStubScheduleRepo() *stubScheduleRepo {
	return &stubScheduleRepo{
		shifts:      make(map[uuid.UUID]*model.WorkShift),
		assignments: make(map[assignmentKey]*model.EmployeeSchedule),
	}
}

func (r *stubScheduleRepo) CreateShift(_ context.Context, s *model.WorkShift) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	r.shifts[s.ID] = &cp
	return nil
}

func (r *stubScheduleRepo) FindShiftByID(_ context.Context, id uuid.UUID) (*model.WorkShift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func (r *stubScheduleRepo) ListShifts(_ context.Context) ([]model.WorkShift, error) {
	var out []model.WorkShift
	for _, s := range r.shifts {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubScheduleRepo) UpsertAssignment(_ context.Context, a *model.EmployeeSchedule) error {
	key := assignmentKey{a.EmployeeID, a.WorkDate.Format("2006-01-02")}
	if existing, ok := r.assignments[key]; ok {
		existing.ShiftID = a.ShiftID
		*a = *existing
		return nil
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	cp := *a
	r.assignments[key] = &cp
	return nil
}

func (r *stubScheduleRepo) ListByEmployeeRange(_ context.Context, employeeID uuid.UUID, start, end time.Time) ([]repository.ScheduleRow, error) {
	var rows []repository.ScheduleRow
	for _, a := range r.assignments {
		if a.EmployeeID != employeeID || a.WorkDate.Before(start) || a.WorkDate.After(end) {
			continue
		}
		shift := r.shifts[a.ShiftID]
		rows = append(rows, repository.ScheduleRow{
			ID:        a.ID,
			WorkDate:  a.WorkDate,
			StartTime: shift.StartTime,
			EndTime:   shift.EndTime,
		})
	}
	return rows, nil
}

func (r *stubScheduleRepo) DeleteAssignment(_ context.Context, id uuid.UUID) error {
	for key, a := range r.assignments {
		if a.ID == id {
			delete(r.assignments, key)
			return nil
		}
	}
	return repository.ErrNotFound
}

var _ repository.ScheduleRepository = (*stubScheduleRepo)(nil)

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestAssignShiftUpsertsSameDate(t *testing.T) {
	schedules := newStubScheduleRepo()
	employees := newStubEmployeeRepo()
	employeeID := employees.addEmployee(model.RolePizzamaker)

	svc := NewScheduleService(schedules, employees)

	morning, err := svc.CreateShift(context.Background(), dto.CreateShiftRequest{
		StartTime: "08:00:00", EndTime: "16:00:00",
	})
	require.NoError(t, err)
	evening, err := svc.CreateShift(context.Background(), dto.CreateShiftRequest{
		StartTime: "16:00:00", EndTime: "23:00:00",
	})
	require.NoError(t, err)

	first, err := svc.AssignShift(context.Background(), dto.AssignShiftRequest{
		EmployeeID: employeeID.String(),
		ShiftID:    morning.ID,
		WorkDate:   "2026-09-07",
	})
	require.NoError(t, err)

	// same employee, same date: the shift is overwritten, not duplicated
	second, err := svc.AssignShift(context.Background(), dto.AssignShiftRequest{
		EmployeeID: employeeID.String(),
		ShiftID:    evening.ID,
		WorkDate:   "2026-09-07",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, evening.ID, second.ShiftID)
	assert.Len(t, schedules.assignments, 1)
}

func TestAssignShiftUnknownEmployee(t *testing.T) {
	schedules := newStubScheduleRepo()
	svc := NewScheduleService(schedules, newStubEmployeeRepo())

	shift, err := svc.CreateShift(context.Background(), dto.CreateShiftRequest{
		StartTime: "08:00:00", EndTime: "16:00:00",
	})
	require.NoError(t, err)

	_, err = svc.AssignShift(context.Background(), dto.AssignShiftRequest{
		EmployeeID: uuid.NewString(),
		ShiftID:    shift.ID,
		WorkDate:   "2026-09-07",
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, schedules.assignments)
}

func TestAssignShiftUnknownShift(t *testing.T) {
	employees := newStubEmployeeRepo()
	employeeID := employees.addEmployee(model.RoleCashier)
	svc := NewScheduleService(newStubScheduleRepo(), employees)

	_, err := svc.AssignShift(context.Background(), dto.AssignShiftRequest{
		EmployeeID: employeeID.String(),
		ShiftID:    uuid.NewString(),
		WorkDate:   "2026-09-07",
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEmployeeScheduleRangeFilter(t *testing.T) {
	schedules := newStubScheduleRepo()
	employees := newStubEmployeeRepo()
	employeeID := employees.addEmployee(model.RolePizzamaker)
	svc := NewScheduleService(schedules, employees)

	shift, err := svc.CreateShift(context.Background(), dto.CreateShiftRequest{
		StartTime: "08:00:00", EndTime: "16:00:00",
	})
	require.NoError(t, err)

	for _, date := range []string{"2026-09-01", "2026-09-07", "2026-09-20"} {
		_, err := svc.AssignShift(context.Background(), dto.AssignShiftRequest{
			EmployeeID: employeeID.String(),
			ShiftID:    shift.ID,
			WorkDate:   date,
		})
		require.NoError(t, err)
	}

	entries, err := svc.EmployeeSchedule(context.Background(), employeeID, dto.ScheduleFilter{
		Start: "2026-09-05",
		End:   "2026-09-10",
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2026-09-07", entries[0].WorkDate)
	assert.Equal(t, "08:00:00", entries[0].StartTime)
}

func TestDeleteAssignment(t *testing.T) {
	schedules := newStubScheduleRepo()
	employees := newStubEmployeeRepo()
	employeeID := employees.addEmployee(model.RoleCashier)
	svc := NewScheduleService(schedules, employees)

	shift, err := svc.CreateShift(context.Background(), dto.CreateShiftRequest{
		StartTime: "08:00:00", EndTime: "16:00:00",
	})
	require.NoError(t, err)

	assigned, err := svc.AssignShift(context.Background(), dto.AssignShiftRequest{
		EmployeeID: employeeID.String(),
		ShiftID:    shift.ID,
		WorkDate:   "2026-09-07",
	})
	require.NoError(t, err)

	assignmentID := uuid.MustParse(assigned.ID)
	require.NoError(t, svc.DeleteAssignment(context.Background(), assignmentID))

	err = svc.DeleteAssignment(context.Background(), assignmentID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
