package dto

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name        string          `json:"name"         validate:"required"`
	Description string          `json:"description"  validate:"required"`
	Price       decimal.Decimal `json:"price"        validate:"required,gt=0"`
	ProductType string          `json:"product_type" validate:"required,oneof=PIZZA DRINK"`
}

type UpdateProductRequest struct {
	Name        string           `json:"name"        validate:"omitempty"`
	Description string           `json:"description" validate:"omitempty"`
	Price       *decimal.Decimal `json:"price"       validate:"omitempty,gt=0"`
	ImageURL    *string          `json:"image_url"   validate:"omitempty,uri"`
}

type SetAvailableRequest struct {
	Available *bool `json:"available" validate:"required"`
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"image_url,omitempty"`
	ProductType string          `json:"product_type"`
	Available   bool            `json:"available"`
}

type CreateVariantRequest struct {
	ProductID     string          `json:"product_id"     validate:"required,uuid"`
	VariantName   string          `json:"variant_name"   validate:"required"`
	PriceModifier decimal.Decimal `json:"price_modifier" validate:"required,gt=0"`
}

type VariantResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	VariantName   string          `json:"variant_name"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
}
