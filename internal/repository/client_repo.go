package repository

import (
	"context"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	CreateTx(ctx context.Context, tx *gorm.DB, c *model.Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error)
	FindByEmail(ctx context.Context, email string) (*model.Client, error)
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) ClientRepository { return &clientRepo{db: db} }

func (r *clientRepo) CreateTx(ctx context.Context, tx *gorm.DB, c *model.Client) error {
	return translate(tx.WithContext(ctx).Create(c).Error)
}

func (r *clientRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	var c model.Client
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *clientRepo) FindByEmail(ctx context.Context, email string) (*model.Client, error) {
	var c model.Client
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}
