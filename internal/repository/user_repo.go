package repository

import (
	"context"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	// CreateTx inserts inside the registration transaction; tx is nil in unit tests.
	CreateTx(ctx context.Context, tx *gorm.DB, u *model.User) error
	// FindByLogin accepts a username or a linked client email.
	FindByLogin(ctx context.Context, identifier string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	DB() *gorm.DB
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) DB() *gorm.DB { return r.db }

func (r *userRepo) CreateTx(ctx context.Context, tx *gorm.DB, u *model.User) error {
	return translate(tx.WithContext(ctx).Create(u).Error)
}

func (r *userRepo) FindByLogin(ctx context.Context, identifier string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Joins("LEFT JOIN clients ON clients.id = users.client_id").
		Where("users.username = ? OR LOWER(clients.email) = LOWER(?)", identifier, identifier).
		First(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}
