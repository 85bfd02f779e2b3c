package repository

import (
	"context"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItemRow is the explicit shape of the line-item reporting query:
// one item joined to its product name and resolved variant.
type OrderItemRow struct {
	OrderID     uuid.UUID       `gorm:"column:order_id"`
	ProductID   uuid.UUID       `gorm:"column:product_id"`
	ProductName string          `gorm:"column:product_name"`
	VariantName string          `gorm:"column:variant_name"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price"`
	Quantity    int             `gorm:"column:quantity"`
}

type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.ProductOrder, error)
	FindHeadersByClient(ctx context.Context, clientID uuid.UUID) ([]model.ProductOrder, error)
	FindItemRows(ctx context.Context, orderIDs []uuid.UUID) ([]OrderItemRow, error)

	// Multi-statement writes run inside one transaction owned by the service.
	CreateTx(ctx context.Context, tx *gorm.DB, o *model.ProductOrder) error
	CreateClientLinkTx(ctx context.Context, tx *gorm.DB, clientID, orderID uuid.UUID) error
	CreateItemTx(ctx context.Context, tx *gorm.DB, item *model.ProductOrderItem) error
	UpdateStatusTx(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error
	UpdateTotalTx(ctx context.Context, tx *gorm.DB, id uuid.UUID, total decimal.Decimal) error
	DeleteItemsTx(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) error
	DeleteClientLinkTx(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) error
	DeleteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) error

	DB() *gorm.DB
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) DB() *gorm.DB { return r.db }

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ProductOrder, error) {
	var o model.ProductOrder
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *orderRepo) FindHeadersByClient(ctx context.Context, clientID uuid.UUID) ([]model.ProductOrder, error) {
	var orders []model.ProductOrder
	err := r.db.WithContext(ctx).
		Joins("JOIN client_product_orders cpo ON cpo.product_order_id = product_orders.id").
		Where("cpo.client_id = ?", clientID).
		Order("product_orders.order_date DESC").
		Find(&orders).Error
	return orders, translate(err)
}

// FindItemRows fetches the line items for a batch of orders in one query,
// joined to product names and variant data. Items without a variant report
// the base price under the "standard" label.
func (r *orderRepo) FindItemRows(ctx context.Context, orderIDs []uuid.UUID) ([]OrderItemRow, error) {
	var rows []OrderItemRow
	err := r.db.WithContext(ctx).
		Table("product_order_items poi").
		Select(`poi.order_id,
			p.id AS product_id,
			p.name AS product_name,
			COALESCE(pv.variant_name, 'standard') AS variant_name,
			p.price * COALESCE(pv.price_modifier, 1) AS unit_price,
			poi.quantity`).
		Joins("LEFT JOIN products p ON p.id = poi.product_id").
		Joins("LEFT JOIN product_variants pv ON pv.id = poi.variant_id").
		Where("poi.order_id IN ?", orderIDs).
		Scan(&rows).Error
	return rows, translate(err)
}

func (r *orderRepo) CreateTx(ctx context.Context, tx *gorm.DB, o *model.ProductOrder) error {
	return translate(tx.WithContext(ctx).Create(o).Error)
}

func (r *orderRepo) CreateClientLinkTx(ctx context.Context, tx *gorm.DB, clientID, orderID uuid.UUID) error {
	link := model.ClientProductOrder{ClientID: clientID, ProductOrderID: orderID}
	return translate(tx.WithContext(ctx).Create(&link).Error)
}

func (r *orderRepo) CreateItemTx(ctx context.Context, tx *gorm.DB, item *model.ProductOrderItem) error {
	return translate(tx.WithContext(ctx).Create(item).Error)
}

func (r *orderRepo) UpdateStatusTx(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error {
	return translate(tx.WithContext(ctx).Model(&model.ProductOrder{}).
		Where("id = ?", id).Update("status", status).Error)
}

func (r *orderRepo) UpdateTotalTx(ctx context.Context, tx *gorm.DB, id uuid.UUID, total decimal.Decimal) error {
	return translate(tx.WithContext(ctx).Model(&model.ProductOrder{}).
		Where("id = ?", id).Update("total_amount", total).Error)
}

func (r *orderRepo) DeleteItemsTx(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) error {
	return translate(tx.WithContext(ctx).
		Delete(&model.ProductOrderItem{}, "order_id = ?", orderID).Error)
}

func (r *orderRepo) DeleteClientLinkTx(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) error {
	return translate(tx.WithContext(ctx).
		Delete(&model.ClientProductOrder{}, "product_order_id = ?", orderID).Error)
}

func (r *orderRepo) DeleteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return translate(tx.WithContext(ctx).
		Delete(&model.ProductOrder{}, "id = ?", id).Error)
}
