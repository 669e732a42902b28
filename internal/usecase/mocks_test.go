package usecase

import (
	"context"

	"app/internal/domain/model"
	"app/internal/gateway"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartItemRepoMock) FindByUserAndProduct(ctx context.Context, userID int64, productID int64) (model.CartItem, error) {
	args := m.Called(ctx, userID, productID)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartItemRepoMock) UpsertAdd(ctx context.Context, userID int64, productID int64, addCount int64) error {
	args := m.Called(ctx, userID, productID, addCount)
	return args.Error(0)
}

func (m *CartItemRepoMock) UpdateCount(ctx context.Context, userID int64, productID int64, count int64) error {
	args := m.Called(ctx, userID, productID, count)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteAllByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Search(ctx context.Context, q repo.ProductSearchQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ListRelated(ctx context.Context, categoryID int64, excludeProductID int64) ([]model.Product, error) {
	args := m.Called(ctx, categoryID, excludeProductID)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

type ShippingRepoMock struct{ mock.Mock }

func (m *ShippingRepoMock) List(ctx context.Context) ([]model.Shipping, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Shipping)
	return items, args.Error(1)
}

func (m *ShippingRepoMock) FindByID(ctx context.Context, id int64) (model.Shipping, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Shipping)
	return s, args.Error(1)
}

type CouponRepoMock struct{ mock.Mock }

func (m *CouponRepoMock) FindFixedByName(ctx context.Context, name string) (model.FixedPriceCoupon, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(model.FixedPriceCoupon)
	return c, args.Error(1)
}

func (m *CouponRepoMock) FindPercentageByName(ctx context.Context, name string) (model.PercentageCoupon, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(model.PercentageCoupon)
	return c, args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) FindByUserAndTransactionID(ctx context.Context, userID int64, transactionID string) (model.Order, error) {
	args := m.Called(ctx, userID, transactionID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) SellIfEnough(ctx context.Context, productID int64, count int64) (bool, error) {
	args := m.Called(ctx, productID, count)
	return args.Bool(0), args.Error(1)
}

func (m *InventoryRepoMock) Restock(ctx context.Context, productID int64, count int64) error {
	args := m.Called(ctx, productID, count)
	return args.Error(0)
}

type GatewayMock struct{ mock.Mock }

func (m *GatewayMock) ClientToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *GatewayMock) Charge(ctx context.Context, amount decimal.Decimal, currency string, paymentMethodToken string) (gateway.ChargeResult, error) {
	args := m.Called(ctx, amount, currency, paymentMethodToken)
	res, _ := args.Get(0).(gateway.ChargeResult)
	return res, args.Error(1)
}

// =====================
// TxManager（fnを素通しで実行するだけ）
// =====================

type txReposStub struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	cartItems  repo.CartItemRepository
	inventory  repo.InventoryRepository
	products   repo.ProductRepository
}

func (s *txReposStub) Orders() repo.OrderRepository         { return s.orders }
func (s *txReposStub) OrderItems() repo.OrderItemRepository { return s.orderItems }
func (s *txReposStub) CartItems() repo.CartItemRepository   { return s.cartItems }
func (s *txReposStub) Inventory() repo.InventoryRepository  { return s.inventory }
func (s *txReposStub) Products() repo.ProductRepository     { return s.products }

type TxManagerMock struct {
	repos  txReposStub
	called bool
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.called = true
	return fn(&m.repos)
}
