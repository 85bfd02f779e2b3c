package repository

import (
	"context"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkplaceRepository interface {
	Create(ctx context.Context, w *model.Workplace) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Workplace, error)
	List(ctx context.Context) ([]model.Workplace, error)
	Update(ctx context.Context, w *model.Workplace) error
	Delete(ctx context.Context, id uuid.UUID) (*model.Workplace, error)

	// Roster operations on the employee↔workplace join.
	InsertAssignment(ctx context.Context, employeeID, workplaceID uuid.UUID) error
	ListRoster(ctx context.Context, workplaceID uuid.UUID) ([]model.Employee, error)
	ClearRosterTx(ctx context.Context, tx *gorm.DB, workplaceID uuid.UUID) error
	InsertAssignmentTx(ctx context.Context, tx *gorm.DB, employeeID, workplaceID uuid.UUID) error

	DB() *gorm.DB
}

type workplaceRepo struct{ db *gorm.DB }

func NewWorkplaceRepository(db *gorm.DB) WorkplaceRepository { return &workplaceRepo{db: db} }

func (r *workplaceRepo) DB() *gorm.DB { return r.db }

func (r *workplaceRepo) Create(ctx context.Context, w *model.Workplace) error {
	return translate(r.db.WithContext(ctx).Create(w).Error)
}

func (r *workplaceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Workplace, error) {
	var w model.Workplace
	if err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &w, nil
}

func (r *workplaceRepo) List(ctx context.Context) ([]model.Workplace, error) {
	var workplaces []model.Workplace
	err := r.db.WithContext(ctx).Order("name ASC").Find(&workplaces).Error
	return workplaces, translate(err)
}

func (r *workplaceRepo) Update(ctx context.Context, w *model.Workplace) error {
	return translate(r.db.WithContext(ctx).Save(w).Error)
}

func (r *workplaceRepo) Delete(ctx context.Context, id uuid.UUID) (*model.Workplace, error) {
	w, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Workplace{}, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return w, nil
}

// InsertAssignment adds one join row. A duplicate pair violates the composite
// primary key and comes back as ErrConflict.
func (r *workplaceRepo) InsertAssignment(ctx context.Context, employeeID, workplaceID uuid.UUID) error {
	row := model.EmployeeWorkplace{EmployeeID: employeeID, WorkplaceID: workplaceID}
	return translate(r.db.WithContext(ctx).Create(&row).Error)
}

func (r *workplaceRepo) ListRoster(ctx context.Context, workplaceID uuid.UUID) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Joins("JOIN employee_workplaces ew ON ew.employee_id = employees.id").
		Where("ew.workplace_id = ?", workplaceID).
		Order("employees.surname ASC").
		Find(&employees).Error
	return employees, translate(err)
}

func (r *workplaceRepo) ClearRosterTx(ctx context.Context, tx *gorm.DB, workplaceID uuid.UUID) error {
	return translate(tx.WithContext(ctx).
		Delete(&model.EmployeeWorkplace{}, "workplace_id = ?", workplaceID).Error)
}

func (r *workplaceRepo) InsertAssignmentTx(ctx context.Context, tx *gorm.DB, employeeID, workplaceID uuid.UUID) error {
	row := model.EmployeeWorkplace{EmployeeID: employeeID, WorkplaceID: workplaceID}
	return translate(tx.WithContext(ctx).Create(&row).Error)
}
