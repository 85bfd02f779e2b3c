package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product types.
const (
	ProductTypePizza = "PIZZA"
	ProductTypeDrink = "DRINK"
)

// Product is a catalog entry. Price is the base price; size variants adjust
// it through a multiplicative modifier.
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string          `gorm:"index;not null"`
	Description string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ImageURL    *string
	ProductType string `gorm:"type:varchar(10);not null"`
	Available   bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Variants []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// ProductVariant is a named size option. The effective unit price of an order
// item is Product.Price × PriceModifier; products are seeded with
// small ×1 / medium ×1.5 / large ×2 on creation.
type ProductVariant struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID     uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_product_variant_name;not null"`
	VariantName   string          `gorm:"uniqueIndex:idx_product_variant_name;not null"`
	PriceModifier decimal.Decimal `gorm:"type:decimal(6,3);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
