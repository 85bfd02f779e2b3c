package repository

import (
	"context"
	"time"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduleRow is the explicit shape of the date-range schedule query:
// one assignment joined to its shift times.
type ScheduleRow struct {
	ID        uuid.UUID `gorm:"column:id" json:"id"`
	WorkDate  time.Time `gorm:"column:work_date" json:"work_date"`
	StartTime string    `gorm:"column:start_time" json:"start_time"`
	EndTime   string    `gorm:"column:end_time" json:"end_time"`
}

type ScheduleRepository interface {
	CreateShift(ctx context.Context, s *model.WorkShift) error
	FindShiftByID(ctx context.Context, id uuid.UUID) (*model.WorkShift, error)
	ListShifts(ctx context.Context) ([]model.WorkShift, error)

	// UpsertAssignment is an atomic insert-or-update keyed on
	// (employee_id, work_date): a second assignment on the same date
	// overwrites the shift in a single round trip.
	UpsertAssignment(ctx context.Context, a *model.EmployeeSchedule) error
	ListByEmployeeRange(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]ScheduleRow, error)
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
}

type scheduleRepo struct{ db *gorm.DB }

func NewScheduleRepository(db *gorm.DB) ScheduleRepository { return &scheduleRepo{db: db} }

func (r *scheduleRepo) CreateShift(ctx context.Context, s *model.WorkShift) error {
	return translate(r.db.WithContext(ctx).Create(s).Error)
}

func (r *scheduleRepo) FindShiftByID(ctx context.Context, id uuid.UUID) (*model.WorkShift, error) {
	var s model.WorkShift
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *scheduleRepo) ListShifts(ctx context.Context) ([]model.WorkShift, error) {
	var shifts []model.WorkShift
	err := r.db.WithContext(ctx).Order("start_time ASC").Find(&shifts).Error
	return shifts, translate(err)
}

func (r *scheduleRepo) UpsertAssignment(ctx context.Context, a *model.EmployeeSchedule) error {
	return translate(r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "work_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"shift_id"}),
	}).Create(a).Error)
}

func (r *scheduleRepo) ListByEmployeeRange(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]ScheduleRow, error) {
	var rows []ScheduleRow
	err := r.db.WithContext(ctx).
		Table("employee_schedules es").
		Select("es.id, es.work_date, ws.start_time, ws.end_time").
		Joins("JOIN work_shifts ws ON ws.id = es.shift_id").
		Where("es.employee_id = ? AND es.work_date BETWEEN ? AND ?", employeeID, start, end).
		Order("es.work_date ASC").
		Scan(&rows).Error
	return rows, translate(err)
}

func (r *scheduleRepo) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.EmployeeSchedule{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
