package service

import (
	"context"
	"errors"
	"testing"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/dto"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// errConnLost stands in for an infrastructure failure below the repository.
var errConnLost = errors.New("driver: bad connection")

// txJournal gives the stubs transaction semantics: successful writes register
// an undo, and the stub method that fails unwinds everything registered so
// far, mirroring how a real transaction discards earlier statements.
type txJournal struct {
	undo []func()
}

func (j *txJournal) record(fn func()) {
	j.undo = append(j.undo, fn)
}

func (j *txJournal) rollback() {
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

// stubOrderRepo is an in-memory OrderRepository for testing. failItemAt makes
// the n-th CreateItemTx call fail (1-based, 0 disables).
type stubOrderRepo struct {
	orders map[uuid.UUID]*model.ProductOrder
	items  map[uuid.UUID][]model.ProductOrderItem
	links  map[uuid.UUID]uuid.UUID // orderID → clientID
	rows   []repository.OrderItemRow

	journal     *txJournal
	failItemAt  int
	itemInserts int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		orders: make(map[uuid.UUID]*model.ProductOrder),
		items:  make(map[uuid.UUID][]model.ProductOrderItem),
		links:  make(map[uuid.UUID]uuid.UUID),
	}
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ProductOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *stubOrderRepo) FindHeadersByClient(_ context.Context, clientID uuid.UUID) ([]model.ProductOrder, error) {
	var out []model.ProductOrder
	for orderID, cid := range r.links {
		if cid == clientID {
			out = append(out, *r.orders[orderID])
		}
	}
	return out, nil
}

func (r *stubOrderRepo) FindItemRows(_ context.Context, _ []uuid.UUID) ([]repository.OrderItemRow, error) {
	return r.rows, nil
}

func (r *stubOrderRepo) CreateTx(_ context.Context, _ *gorm.DB, o *model.ProductOrder) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	cp := *o
	r.orders[o.ID] = &cp
	if r.journal != nil {
		id := o.ID
		r.journal.record(func() { delete(r.orders, id) })
	}
	return nil
}

func (r *stubOrderRepo) CreateClientLinkTx(_ context.Context, _ *gorm.DB, clientID, orderID uuid.UUID) error {
	r.links[orderID] = clientID
	if r.journal != nil {
		r.journal.record(func() { delete(r.links, orderID) })
	}
	return nil
}

func (r *stubOrderRepo) CreateItemTx(_ context.Context, _ *gorm.DB, item *model.ProductOrderItem) error {
	r.itemInserts++
	if r.failItemAt != 0 && r.itemInserts == r.failItemAt {
		if r.journal != nil {
			r.journal.rollback()
		}
		return errConnLost
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.OrderID] = append(r.items[item.OrderID], *item)
	if r.journal != nil {
		oid := item.OrderID
		r.journal.record(func() {
			rest := r.items[oid]
			if len(rest) <= 1 {
				delete(r.items, oid)
				return
			}
			r.items[oid] = rest[:len(rest)-1]
		})
	}
	return nil
}

func (r *stubOrderRepo) UpdateStatusTx(_ context.Context, _ *gorm.DB, id uuid.UUID, status string) error {
	o, ok := r.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.Status = status
	return nil
}

func (r *stubOrderRepo) UpdateTotalTx(_ context.Context, _ *gorm.DB, id uuid.UUID, total decimal.Decimal) error {
	o, ok := r.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.TotalAmount = total
	return nil
}

func (r *stubOrderRepo) DeleteItemsTx(_ context.Context, _ *gorm.DB, orderID uuid.UUID) error {
	delete(r.items, orderID)
	return nil
}

func (r *stubOrderRepo) DeleteClientLinkTx(_ context.Context, _ *gorm.DB, orderID uuid.UUID) error {
	delete(r.links, orderID)
	return nil
}

func (r *stubOrderRepo) DeleteTx(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *stubOrderRepo) DB() *gorm.DB { return nil }

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

// stubProductRepo serves a fixed catalog. variantErr, when set, makes every
// FindVariant call fail with it.
type stubProductRepo struct {
	products   map[uuid.UUID]*model.Product
	variants   map[uuid.UUID]map[string]*model.ProductVariant
	variantErr error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products: make(map[uuid.UUID]*model.Product),
		variants: make(map[uuid.UUID]map[string]*model.ProductVariant),
	}
}

func (r *stubProductRepo) addProduct(name string, price decimal.Decimal) uuid.UUID {
	id := uuid.New()
	r.products[id] = &model.Product{ID: id, Name: name, Price: price, ProductType: model.ProductTypePizza, Available: true}
	return id
}

func (r *stubProductRepo) addVariant(productID uuid.UUID, name string, modifier decimal.Decimal) uuid.UUID {
	if r.variants[productID] == nil {
		r.variants[productID] = make(map[string]*model.ProductVariant)
	}
	id := uuid.New()
	r.variants[productID][name] = &model.ProductVariant{
		ID: id, ProductID: productID, VariantName: name, PriceModifier: modifier,
	}
	return id
}

func (r *stubProductRepo) CreateTx(_ context.Context, _ *gorm.DB, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Product, error) {
	var out []model.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) ListByType(_ context.Context, productType string) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.ProductType == productType {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) SetAvailable(_ context.Context, id uuid.UUID, available bool) error {
	p, ok := r.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Available = available
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.products, id)
	delete(r.variants, id)
	return p, nil
}

func (r *stubProductRepo) CreateVariantTx(_ context.Context, _ *gorm.DB, v *model.ProductVariant) error {
	return r.CreateVariant(context.Background(), v)
}

func (r *stubProductRepo) CreateVariant(_ context.Context, v *model.ProductVariant) error {
	if r.variants[v.ProductID] == nil {
		r.variants[v.ProductID] = make(map[string]*model.ProductVariant)
	}
	if _, exists := r.variants[v.ProductID][v.VariantName]; exists {
		return repository.ErrConflict
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.variants[v.ProductID][v.VariantName] = v
	return nil
}

func (r *stubProductRepo) FindVariant(_ context.Context, productID uuid.UUID, variantName string) (*model.ProductVariant, error) {
	if r.variantErr != nil {
		return nil, r.variantErr
	}
	v, ok := r.variants[productID][variantName]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return v, nil
}

func (r *stubProductRepo) ListVariants(_ context.Context) ([]model.ProductVariant, error) {
	var out []model.ProductVariant
	for _, byName := range r.variants {
		for _, v := range byName {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubProductRepo) ListVariantsByProduct(_ context.Context, productID uuid.UUID) ([]model.ProductVariant, error) {
	var out []model.ProductVariant
	for _, v := range r.variants[productID] {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// stubClientRepo holds registered clients.
type stubClientRepo struct {
	clients map[uuid.UUID]*model.Client
	byEmail map[string]*model.Client
	journal *txJournal
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{
		clients: make(map[uuid.UUID]*model.Client),
		byEmail: make(map[string]*model.Client),
	}
}

func (r *stubClientRepo) addClient() uuid.UUID {
	id := uuid.New()
	r.clients[id] = &model.Client{ID: id, Name: "Ivan", Surname: "Petrov"}
	return id
}

func (r *stubClientRepo) CreateTx(_ context.Context, _ *gorm.DB, c *model.Client) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if _, exists := r.byEmail[c.Email]; exists {
		if r.journal != nil {
			r.journal.rollback()
		}
		return repository.ErrConflict
	}
	r.clients[c.ID] = c
	r.byEmail[c.Email] = c
	if r.journal != nil {
		id, email := c.ID, c.Email
		r.journal.record(func() {
			delete(r.clients, id)
			delete(r.byEmail, email)
		})
	}
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (r *stubClientRepo) FindByEmail(_ context.Context, email string) (*model.Client, error) {
	c, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

var _ repository.ClientRepository = (*stubClientRepo)(nil)

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCreateOrderAppliesVariantModifier(t *testing.T) {
	orders := newStubOrderRepo()
	products := newStubProductRepo()
	clients := newStubClientRepo()

	pizzaID := products.addProduct("Margherita", decimal.NewFromInt(450))
	products.addVariant(pizzaID, "medium", decimal.RequireFromString("1.5"))
	clientID := clients.addClient()

	svc := NewOrderService(orders, products, clients)
	resp, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ClientID: clientID.String(),
		Items: []dto.OrderItemRequest{
			{ProductID: pizzaID.String(), VariantName: "medium", Quantity: 2},
		},
	})
	require.NoError(t, err)

	// 450 * 1.5 * 2 = 1350
	assert.True(t, decimal.NewFromInt(1350).Equal(resp.TotalAmount),
		"expected 1350, got %s", resp.TotalAmount)
	assert.Equal(t, model.OrderStatusPreparing, resp.Status)

	orderID := uuid.MustParse(resp.ID)
	assert.Equal(t, clientID, orders.links[orderID])
	require.Len(t, orders.items[orderID], 1)
	assert.NotNil(t, orders.items[orderID][0].VariantID)
}

func TestCreateOrderUnknownVariantFallsBackToBasePrice(t *testing.T) {
	orders := newStubOrderRepo()
	products := newStubProductRepo()
	clients := newStubClientRepo()

	colaID := products.addProduct("Cola", decimal.NewFromInt(120))
	clientID := clients.addClient()

	svc := NewOrderService(orders, products, clients)
	resp, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ClientID: clientID.String(),
		Items: []dto.OrderItemRequest{
			{ProductID: colaID.String(), VariantName: "xl", Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(360).Equal(resp.TotalAmount))
	orderID := uuid.MustParse(resp.ID)
	require.Len(t, orders.items[orderID], 1)
	assert.Nil(t, orders.items[orderID][0].VariantID)
}

func TestCreateOrderVariantLookupFailurePropagates(t *testing.T) {
	orders := newStubOrderRepo()
	products := newStubProductRepo()
	clients := newStubClientRepo()

	pizzaID := products.addProduct("Margherita", decimal.NewFromInt(450))
	products.addVariant(pizzaID, "medium", decimal.RequireFromString("1.5"))
	clientID := clients.addClient()
	products.variantErr = errConnLost

	svc := NewOrderService(orders, products, clients)
	_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ClientID: clientID.String(),
		Items: []dto.OrderItemRequest{
			{ProductID: pizzaID.String(), VariantName: "medium", Quantity: 2},
		},
	})

	// the failed lookup must not be mistaken for a missing variant and
	// silently priced at the base price
	require.Error(t, err)
	assert.ErrorIs(t, err, errConnLost)
	assert.Empty(t, orders.orders)
	assert.Empty(t, orders.items)
	assert.Empty(t, orders.links)
}

func TestCreateOrderMidItemFailureRollsBack(t *testing.T) {
	orders := newStubOrderRepo()
	products := newStubProductRepo()
	clients := newStubClientRepo()

	pizzaID := products.addProduct("Margherita", decimal.NewFromInt(450))
	colaID := products.addProduct("Cola", decimal.NewFromInt(120))
	clientID := clients.addClient()

	orders.journal = &txJournal{}
	orders.failItemAt = 2

	svc := NewOrderService(orders, products, clients)
	_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ClientID: clientID.String(),
		Items: []dto.OrderItemRequest{
			{ProductID: pizzaID.String(), Quantity: 1},
			{ProductID: colaID.String(), Quantity: 2},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errConnLost)

	// header, client link and the first item must all be gone
	assert.Empty(t, orders.orders)
	assert.Empty(t, orders.items)
	assert.Empty(t, orders.links)
}

func TestCreateOrderUnknownProductPersistsNothing(t *testing.T) {
	orders := newStubOrderRepo()
	products := newStubProductRepo()
	clients := newStubClientRepo()
	clientID := clients.addClient()

	svc := NewOrderService(orders, products, clients)
	_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ClientID: clientID.String(),
		Items: []dto.OrderItemRequest{
			{ProductID: uuid.NewString(), Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.Empty(t, orders.orders)
	assert.Empty(t, orders.items)
	assert.Empty(t, orders.links)
}

func TestCreateOrderUnknownClient(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), newStubProductRepo(), newStubClientRepo())
	_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ClientID: uuid.NewString(),
		Items:    []dto.OrderItemRequest{{ProductID: uuid.NewString(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateOrderStatusOnly(t *testing.T) {
	orders := newStubOrderRepo()
	products := newStubProductRepo()
	clients := newStubClientRepo()

	pizzaID := products.addProduct("Pepperoni", decimal.NewFromInt(500))
	clientID := clients.addClient()
	svc := NewOrderService(orders, products, clients)

	created, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ClientID: clientID.String(),
		Items:    []dto.OrderItemRequest{{ProductID: pizzaID.String(), Quantity: 1}},
	})
	require.NoError(t, err)
	orderID := uuid.MustParse(created.ID)

	updated, err := svc.Update(context.Background(), orderID, dto.UpdateOrderRequest{
		Status: model.OrderStatusReady,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusReady, updated.Status)
	// total untouched, items untouched
	assert.True(t, created.TotalAmount.Equal(updated.TotalAmount))
	assert.Len(t, orders.items[orderID], 1)
}

func TestUpdateOrderReplacesItemsAndTotal(t *testing.T) {
	orders := newStubOrderRepo()
	products := newStubProductRepo()
	clients := newStubClientRepo()

	pizzaID := products.addProduct("Pepperoni", decimal.NewFromInt(500))
	products.addVariant(pizzaID, "large", decimal.NewFromInt(2))
	colaID := products.addProduct("Cola", decimal.NewFromInt(120))
	clientID := clients.addClient()
	svc := NewOrderService(orders, products, clients)

	created, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ClientID: clientID.String(),
		Items:    []dto.OrderItemRequest{{ProductID: colaID.String(), Quantity: 5}},
	})
	require.NoError(t, err)
	orderID := uuid.MustParse(created.ID)

	updated, err := svc.Update(context.Background(), orderID, dto.UpdateOrderRequest{
		Items: []dto.OrderItemRequest{
			{ProductID: pizzaID.String(), VariantName: "large", Quantity: 1},
		},
	})
	require.NoError(t, err)

	// 500 * 2 = 1000 replaces the old 600 total
	assert.True(t, decimal.NewFromInt(1000).Equal(updated.TotalAmount))
	require.Len(t, orders.items[orderID], 1)
	assert.Equal(t, pizzaID, orders.items[orderID][0].ProductID)
}

func TestUpdateOrderNotFound(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), newStubProductRepo(), newStubClientRepo())
	_, err := svc.Update(context.Background(), uuid.New(), dto.UpdateOrderRequest{Status: model.OrderStatusReady})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteOrderRemovesEverythingAndReturnsSnapshot(t *testing.T) {
	orders := newStubOrderRepo()
	products := newStubProductRepo()
	clients := newStubClientRepo()

	pizzaID := products.addProduct("Margherita", decimal.NewFromInt(450))
	clientID := clients.addClient()
	svc := NewOrderService(orders, products, clients)

	created, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ClientID: clientID.String(),
		Items:    []dto.OrderItemRequest{{ProductID: pizzaID.String(), Quantity: 2}},
	})
	require.NoError(t, err)
	orderID := uuid.MustParse(created.ID)

	snapshot, err := svc.Delete(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, snapshot.ID)
	assert.True(t, created.TotalAmount.Equal(snapshot.TotalAmount))

	assert.Empty(t, orders.orders)
	assert.Empty(t, orders.items)
	assert.Empty(t, orders.links)

	_, err = svc.Delete(context.Background(), orderID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFindByClientGroupsItems(t *testing.T) {
	orders := newStubOrderRepo()
	products := newStubProductRepo()
	clients := newStubClientRepo()

	pizzaID := products.addProduct("Margherita", decimal.NewFromInt(450))
	clientID := clients.addClient()
	svc := NewOrderService(orders, products, clients)

	created, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ClientID: clientID.String(),
		Items:    []dto.OrderItemRequest{{ProductID: pizzaID.String(), Quantity: 2}},
	})
	require.NoError(t, err)

	orders.rows = []repository.OrderItemRow{{
		OrderID:     uuid.MustParse(created.ID),
		ProductID:   pizzaID,
		ProductName: "Margherita",
		VariantName: "standard",
		UnitPrice:   decimal.NewFromInt(450),
		Quantity:    2,
	}}

	result, err := svc.FindByClient(context.Background(), clientID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Len(t, result[0].Products, 1)
	assert.Equal(t, "Margherita", result[0].Products[0].Name)
	assert.Equal(t, "standard", result[0].Products[0].VariantName)
}

func TestFindByClientEmpty(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), newStubProductRepo(), newStubClientRepo())
	result, err := svc.FindByClient(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, result)
}
