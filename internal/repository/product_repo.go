package repository

import (
	"context"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for the catalog.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductRepository interface {
	CreateTx(ctx context.Context, tx *gorm.DB, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)
	ListByType(ctx context.Context, productType string) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	SetAvailable(ctx context.Context, id uuid.UUID, available bool) error
	Delete(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Variants
	CreateVariantTx(ctx context.Context, tx *gorm.DB, v *model.ProductVariant) error
	CreateVariant(ctx context.Context, v *model.ProductVariant) error
	FindVariant(ctx context.Context, productID uuid.UUID, variantName string) (*model.ProductVariant, error)
	ListVariants(ctx context.Context) ([]model.ProductVariant, error)
	ListVariantsByProduct(ctx context.Context, productID uuid.UUID) ([]model.ProductVariant, error)

	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) DB() *gorm.DB { return r.db }

func (r *productRepo) CreateTx(ctx context.Context, tx *gorm.DB, p *model.Product) error {
	return translate(tx.WithContext(ctx).Create(p).Error)
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *productRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	return products, translate(err)
}

func (r *productRepo) ListByType(ctx context.Context, productType string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("product_type = ?", productType).
		Order("name ASC").
		Find(&products).Error
	return products, translate(err)
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return translate(r.db.WithContext(ctx).Save(p).Error)
}

func (r *productRepo) SetAvailable(ctx context.Context, id uuid.UUID, available bool) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Update("available", available)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete returns the pre-deletion row; variants go with it via ON DELETE CASCADE.
func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *productRepo) CreateVariantTx(ctx context.Context, tx *gorm.DB, v *model.ProductVariant) error {
	return translate(tx.WithContext(ctx).Create(v).Error)
}

func (r *productRepo) CreateVariant(ctx context.Context, v *model.ProductVariant) error {
	return translate(r.db.WithContext(ctx).Create(v).Error)
}

func (r *productRepo) FindVariant(ctx context.Context, productID uuid.UUID, variantName string) (*model.ProductVariant, error) {
	var v model.ProductVariant
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND variant_name = ?", productID, variantName).
		First(&v).Error
	if err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *productRepo) ListVariants(ctx context.Context) ([]model.ProductVariant, error) {
	var variants []model.ProductVariant
	err := r.db.WithContext(ctx).Find(&variants).Error
	return variants, translate(err)
}

func (r *productRepo) ListVariantsByProduct(ctx context.Context, productID uuid.UUID) ([]model.ProductVariant, error) {
	var variants []model.ProductVariant
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Find(&variants).Error
	return variants, translate(err)
}
