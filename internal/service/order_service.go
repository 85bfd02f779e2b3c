package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/dto"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrderRequest) (*dto.OrderResponse, error)
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]dto.OrderWithProducts, error)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.OrderWithProducts, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
}

type orderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	clients  repository.ClientRepository
}

func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	clients repository.ClientRepository,
) OrderService {
	return &orderService{orders: orders, products: products, clients: clients}
}

// resolvedItem is one order line after price resolution: the variant modifier
// (if any) has been applied multiplicatively to the product's base price.
type resolvedItem struct {
	productID uuid.UUID
	variantID *uuid.UUID
	unitPrice decimal.Decimal
	quantity  int
}

// resolveItems validates every requested line against the catalog and prices
// it. Unknown product ids fail the whole request; an unknown variant name
// falls back to the base price, matching how reads report such items as
// "standard".
func (s *orderService) resolveItems(ctx context.Context, items []dto.OrderItemRequest) ([]resolvedItem, decimal.Decimal, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("product_id %q: %w", item.ProductID, err)
		}
		ids = append(ids, pid)
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, err
	}
	prices := make(map[uuid.UUID]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}

	resolved := make([]resolvedItem, 0, len(items))
	total := decimal.Zero
	for i, item := range items {
		base, ok := prices[ids[i]]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("product %s: %w", item.ProductID, repository.ErrNotFound)
		}

		unit := base
		var variantID *uuid.UUID
		if item.VariantName != "" {
			variant, err := s.products.FindVariant(ctx, ids[i], item.VariantName)
			switch {
			case err == nil:
				unit = base.Mul(variant.PriceModifier)
				variantID = &variant.ID
			case !errors.Is(err, repository.ErrNotFound):
				return nil, decimal.Zero, fmt.Errorf("variant %q: %w", item.VariantName, err)
			}
		}

		total = total.Add(unit.Mul(decimal.NewFromInt(int64(item.Quantity))))
		resolved = append(resolved, resolvedItem{
			productID: ids[i],
			variantID: variantID,
			unitPrice: unit,
			quantity:  item.Quantity,
		})
	}
	return resolved, total, nil
}

// Create prices the items, then persists the header, the client link and the
// line items as one atomic unit. Any failure rolls everything back.
func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("client_id %q: %w", req.ClientID, err)
	}
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, fmt.Errorf("client %s: %w", req.ClientID, err)
	}

	resolved, total, err := s.resolveItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.OrderStatusPreparing
	}

	order := model.ProductOrder{
		OrderDate:   time.Now(),
		Status:      status,
		TotalAmount: total,
	}
	txErr := runTx(ctx, s.orders.DB(), func(tx *gorm.DB) error {
		if err := s.orders.CreateTx(ctx, tx, &order); err != nil {
			return err
		}
		if err := s.orders.CreateClientLinkTx(ctx, tx, clientID, order.ID); err != nil {
			return err
		}
		for _, r := range resolved {
			item := model.ProductOrderItem{
				OrderID:   order.ID,
				ProductID: r.productID,
				VariantID: r.variantID,
				Quantity:  r.quantity,
			}
			if err := s.orders.CreateItemTx(ctx, tx, &item); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return orderToResponse(&order), nil
}

// Update changes the status, replaces the item set, or both. A new item set
// discards every existing line, re-runs price resolution against the current
// catalog and overwrites the total, all inside one transaction.
func (s *orderService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var resolved []resolvedItem
	total := order.TotalAmount
	if len(req.Items) > 0 {
		resolved, total, err = s.resolveItems(ctx, req.Items)
		if err != nil {
			return nil, err
		}
	}

	txErr := runTx(ctx, s.orders.DB(), func(tx *gorm.DB) error {
		if req.Status != "" {
			if err := s.orders.UpdateStatusTx(ctx, tx, id, req.Status); err != nil {
				return err
			}
			order.Status = req.Status
		}
		if len(req.Items) == 0 {
			return nil
		}
		if err := s.orders.DeleteItemsTx(ctx, tx, id); err != nil {
			return err
		}
		for _, r := range resolved {
			item := model.ProductOrderItem{
				OrderID:   id,
				ProductID: r.productID,
				VariantID: r.variantID,
				Quantity:  r.quantity,
			}
			if err := s.orders.CreateItemTx(ctx, tx, &item); err != nil {
				return err
			}
		}
		if err := s.orders.UpdateTotalTx(ctx, tx, id, total); err != nil {
			return err
		}
		order.TotalAmount = total
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return orderToResponse(order), nil
}

// FindByClient returns the client's orders newest-first, with the line items
// fetched in a second batched query and grouped back onto their headers.
func (s *orderService) FindByClient(ctx context.Context, clientID uuid.UUID) ([]dto.OrderWithProducts, error) {
	orders, err := s.orders.FindHeadersByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []dto.OrderWithProducts{}, nil
	}

	ids := make([]uuid.UUID, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	rows, err := s.orders.FindItemRows(ctx, ids)
	if err != nil {
		return nil, err
	}

	byOrder := make(map[uuid.UUID][]dto.OrderProduct, len(orders))
	for _, row := range rows {
		byOrder[row.OrderID] = append(byOrder[row.OrderID], itemRowToProduct(row))
	}

	result := make([]dto.OrderWithProducts, len(orders))
	for i, o := range orders {
		products := byOrder[o.ID]
		if products == nil {
			products = []dto.OrderProduct{}
		}
		result[i] = dto.OrderWithProducts{
			ID:          o.ID.String(),
			OrderDate:   o.OrderDate.Format(time.RFC3339),
			Status:      o.Status,
			TotalAmount: o.TotalAmount,
			Products:    products,
		}
	}
	return result, nil
}

func (s *orderService) FindOne(ctx context.Context, id uuid.UUID) (*dto.OrderWithProducts, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.orders.FindItemRows(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	products := make([]dto.OrderProduct, len(rows))
	for i, row := range rows {
		products[i] = itemRowToProduct(row)
	}
	return &dto.OrderWithProducts{
		ID:          order.ID.String(),
		OrderDate:   order.OrderDate.Format(time.RFC3339),
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Products:    products,
	}, nil
}

// Delete removes the client link, the line items and the header in one
// transaction and returns the pre-deletion snapshot.
func (s *orderService) Delete(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	txErr := runTx(ctx, s.orders.DB(), func(tx *gorm.DB) error {
		if err := s.orders.DeleteClientLinkTx(ctx, tx, id); err != nil {
			return err
		}
		if err := s.orders.DeleteItemsTx(ctx, tx, id); err != nil {
			return err
		}
		return s.orders.DeleteTx(ctx, tx, id)
	})
	if txErr != nil {
		return nil, txErr
	}
	return orderToResponse(order), nil
}

func orderToResponse(o *model.ProductOrder) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:          o.ID.String(),
		OrderDate:   o.OrderDate.Format(time.RFC3339),
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
	}
}

func itemRowToProduct(row repository.OrderItemRow) dto.OrderProduct {
	return dto.OrderProduct{
		ID:          row.ProductID.String(),
		Name:        row.ProductName,
		Price:       row.UnitPrice,
		VariantName: row.VariantName,
		Quantity:    row.Quantity,
	}
}
