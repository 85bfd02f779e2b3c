package repository

import (
	"context"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(ctx context.Context, e *model.Employee) error
	CreateTx(ctx context.Context, tx *gorm.DB, e *model.Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Update(ctx context.Context, e *model.Employee) error
	Delete(ctx context.Context, id uuid.UUID) (*model.Employee, error)
}

type employeeRepo struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository { return &employeeRepo{db: db} }

func (r *employeeRepo) Create(ctx context.Context, e *model.Employee) error {
	return translate(r.db.WithContext(ctx).Create(e).Error)
}

func (r *employeeRepo) CreateTx(ctx context.Context, tx *gorm.DB, e *model.Employee) error {
	return translate(tx.WithContext(ctx).Create(e).Error)
}

func (r *employeeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var e model.Employee
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *employeeRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&employees).Error
	return employees, translate(err)
}

func (r *employeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).Order("surname ASC, name ASC").Find(&employees).Error
	return employees, translate(err)
}

func (r *employeeRepo) Update(ctx context.Context, e *model.Employee) error {
	return translate(r.db.WithContext(ctx).Save(e).Error)
}

// Delete returns the pre-deletion row; dependent schedule, assignment and user
// rows go with it via ON DELETE CASCADE.
func (r *employeeRepo) Delete(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	e, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Employee{}, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return e, nil
}
