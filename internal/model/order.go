package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order statuses.
const (
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
)

// ProductOrder is an order header. TotalAmount is derived from the items at
// write time and recomputed on every item change, never patched incrementally.
type ProductOrder struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderDate   time.Time       `gorm:"index;not null"`
	Status      string          `gorm:"type:varchar(20);not null;default:'preparing'"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Items []ProductOrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// ProductOrderItem is one line of an order. VariantID records which size
// variant priced the line; nil means the base price was used.
type ProductOrderItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null"`
	VariantID *uuid.UUID `gorm:"type:uuid"`
	Quantity  int        `gorm:"not null"`

	Product *Product        `gorm:"foreignKey:ProductID"`
	Variant *ProductVariant `gorm:"foreignKey:VariantID"`
}

// ClientProductOrder links an order to the client who placed it.
type ClientProductOrder struct {
	ClientID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductOrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (ClientProductOrder) TableName() string { return "client_product_orders" }
