package dto

import "github.com/shopspring/decimal"

type OrderItemRequest struct {
	ProductID   string `json:"product_id"   validate:"required,uuid"`
	VariantName string `json:"variant_name" validate:"omitempty"`
	Quantity    int    `json:"quantity"     validate:"required,min=1"`
}

type CreateOrderRequest struct {
	Items    []OrderItemRequest `json:"items"     validate:"required,min=1,dive"`
	ClientID string             `json:"client_id" validate:"required,uuid"`
	Status   string             `json:"status"    validate:"omitempty,oneof=preparing ready"`
}

// UpdateOrderRequest updates the status, the item set, or both. A new item
// set fully replaces the old one and the total is recomputed.
type UpdateOrderRequest struct {
	Status string             `json:"status" validate:"omitempty,oneof=preparing ready"`
	Items  []OrderItemRequest `json:"items"  validate:"omitempty,min=1,dive"`
}

type OrderResponse struct {
	ID          string          `json:"id"`
	OrderDate   string          `json:"order_date"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type OrderProduct struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	VariantName string          `json:"variant_name"`
	Quantity    int             `json:"quantity"`
}

// OrderWithProducts is one client order with its line items grouped on.
type OrderWithProducts struct {
	ID          string          `json:"id"`
	OrderDate   string          `json:"order_date"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Products    []OrderProduct  `json:"products"`
}
