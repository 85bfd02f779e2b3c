package service

import (
	"context"
	"testing"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/dto"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type rosterPair struct{ employeeID, workplaceID uuid.UUID }

// stubWorkplaceRepo is an in-memory WorkplaceRepository with a roster join.
type stubWorkplaceRepo struct {
	workplaces map[uuid.UUID]*model.Workplace
	employees  *stubEmployeeRepo
	roster     []rosterPair
}

func newStubWorkplaceRepo(employees *stubEmployeeRepo) *stubWorkplaceRepo {
	return &stubWorkplaceRepo{
		workplaces: make(map[uuid.UUID]*model.Workplace),
		employees:  employees,
	}
}

func (r *stubWorkplaceRepo) addWorkplace(name string) uuid.UUID {
	id := uuid.New()
	r.workplaces[id] = &model.Workplace{ID: id, Name: name, Status: model.WorkplaceFree, Capacity: 2}
	return id
}

func (r *stubWorkplaceRepo) Create(_ context.Context, w *model.Workplace) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	cp := *w
	r.workplaces[w.ID] = &cp
	return nil
}

func (r *stubWorkplaceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Workplace, error) {
	w, ok := r.workplaces[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return w, nil
}

func (r *stubWorkplaceRepo) List(_ context.Context) ([]model.Workplace, error) {
	var out []model.Workplace
	for _, w := range r.workplaces {
		out = append(out, *w)
	}
	return out, nil
}

func (r *stubWorkplaceRepo) Update(_ context.Context, w *model.Workplace) error {
	if _, ok := r.workplaces[w.ID]; !ok {
		return repository.ErrNotFound
	}
	r.workplaces[w.ID] = w
	return nil
}

func (r *stubWorkplaceRepo) Delete(_ context.Context, id uuid.UUID) (*model.Workplace, error) {
	w, ok := r.workplaces[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.workplaces, id)
	return w, nil
}

func (r *stubWorkplaceRepo) InsertAssignment(_ context.Context, employeeID, workplaceID uuid.UUID) error {
	for _, p := range r.roster {
		if p.employeeID == employeeID && p.workplaceID == workplaceID {
			return repository.ErrConflict
		}
	}
	r.roster = append(r.roster, rosterPair{employeeID, workplaceID})
	return nil
}

func (r *stubWorkplaceRepo) ListRoster(_ context.Context, workplaceID uuid.UUID) ([]model.Employee, error) {
	var out []model.Employee
	for _, p := range r.roster {
		if p.workplaceID == workplaceID {
			if e, ok := r.employees.employees[p.employeeID]; ok {
				out = append(out, *e)
			}
		}
	}
	return out, nil
}

func (r *stubWorkplaceRepo) ClearRosterTx(_ context.Context, _ *gorm.DB, workplaceID uuid.UUID) error {
	kept := r.roster[:0]
	for _, p := range r.roster {
		if p.workplaceID != workplaceID {
			kept = append(kept, p)
		}
	}
	r.roster = kept
	return nil
}

func (r *stubWorkplaceRepo) InsertAssignmentTx(ctx context.Context, _ *gorm.DB, employeeID, workplaceID uuid.UUID) error {
	return r.InsertAssignment(ctx, employeeID, workplaceID)
}

func (r *stubWorkplaceRepo) DB() *gorm.DB { return nil }

var _ repository.WorkplaceRepository = (*stubWorkplaceRepo)(nil)

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestAssignWorkplaceDuplicateConflict(t *testing.T) {
	employees := newStubEmployeeRepo()
	workplaces := newStubWorkplaceRepo(employees)

	employeeID := employees.addEmployee(model.RoleCashier)
	workplaceID := workplaces.addWorkplace("Checkout 1")

	svc := NewEmployeeService(employees, workplaces)
	require.NoError(t, svc.AssignWorkplace(context.Background(), employeeID, workplaceID))

	err := svc.AssignWorkplace(context.Background(), employeeID, workplaceID)
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestAssignWorkplaceUnknownIDs(t *testing.T) {
	employees := newStubEmployeeRepo()
	workplaces := newStubWorkplaceRepo(employees)
	svc := NewEmployeeService(employees, workplaces)

	err := svc.AssignWorkplace(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	employeeID := employees.addEmployee(model.RoleCashier)
	err = svc.AssignWorkplace(context.Background(), employeeID, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, workplaces.roster)
}

func TestReplaceRosterSwapsAssignments(t *testing.T) {
	employees := newStubEmployeeRepo()
	workplaces := newStubWorkplaceRepo(employees)

	kitchenID := workplaces.addWorkplace("Kitchen")
	oldID := employees.addEmployee(model.RolePizzamaker)
	newA := employees.addEmployee(model.RolePizzamaker)
	newB := employees.addEmployee(model.RolePizzamaker)

	require.NoError(t, workplaces.InsertAssignment(context.Background(), oldID, kitchenID))

	svc := NewWorkplaceService(workplaces, employees)
	roster, err := svc.ReplaceRoster(context.Background(), kitchenID, []uuid.UUID{newA, newB})
	require.NoError(t, err)
	assert.Len(t, roster, 2)

	current, err := svc.ListRoster(context.Background(), kitchenID)
	require.NoError(t, err)
	ids := make(map[string]bool, len(current))
	for _, e := range current {
		ids[e.ID] = true
	}
	assert.True(t, ids[newA.String()])
	assert.True(t, ids[newB.String()])
	assert.False(t, ids[oldID.String()])
}

func TestReplaceRosterUnknownEmployeeLeavesRosterIntact(t *testing.T) {
	employees := newStubEmployeeRepo()
	workplaces := newStubWorkplaceRepo(employees)

	kitchenID := workplaces.addWorkplace("Kitchen")
	oldID := employees.addEmployee(model.RolePizzamaker)
	require.NoError(t, workplaces.InsertAssignment(context.Background(), oldID, kitchenID))

	svc := NewWorkplaceService(workplaces, employees)
	_, err := svc.ReplaceRoster(context.Background(), kitchenID, []uuid.UUID{uuid.New()})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// validation failed before the clear, so the old roster survives
	current, err := svc.ListRoster(context.Background(), kitchenID)
	require.NoError(t, err)
	assert.Len(t, current, 1)
}

func TestCreateWorkplaceDefaultsToFree(t *testing.T) {
	employees := newStubEmployeeRepo()
	workplaces := newStubWorkplaceRepo(employees)
	svc := NewWorkplaceService(workplaces, employees)

	resp, err := svc.Create(context.Background(), dto.CreateWorkplaceRequest{
		Name:     "Checkout 2",
		Capacity: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, model.WorkplaceFree, resp.Status)
}
