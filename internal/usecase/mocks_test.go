package usecase_test

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Repository モック
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) ListAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserRepoMock) UpdateRole(ctx context.Context, userID int64, role model.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

var _ repo.UserRepository = (*UserRepoMock)(nil)

type ItemRepoMock struct{ mock.Mock }

func (m *ItemRepoMock) Create(ctx context.Context, item model.Item) (model.Item, error) {
	args := m.Called(ctx, item)
	it, _ := args.Get(0).(model.Item)
	return it, args.Error(1)
}

func (m *ItemRepoMock) FindByID(ctx context.Context, id int64) (model.Item, error) {
	args := m.Called(ctx, id)
	it, _ := args.Get(0).(model.Item)
	return it, args.Error(1)
}

func (m *ItemRepoMock) FindByName(ctx context.Context, name string) (model.Item, error) {
	args := m.Called(ctx, name)
	it, _ := args.Get(0).(model.Item)
	return it, args.Error(1)
}

func (m *ItemRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ItemRepoMock) ListWithCategory(ctx context.Context) ([]repo.ItemWithCategory, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]repo.ItemWithCategory)
	return items, args.Error(1)
}

var _ repo.ItemRepository = (*ItemRepoMock)(nil)

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) ListAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]model.Category)
	return cats, args.Error(1)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(model.Category)
	return out, args.Error(1)
}

var _ repo.CategoryRepository = (*CategoryRepoMock)(nil)

type TableRepoMock struct{ mock.Mock }

func (m *TableRepoMock) FindByNumber(ctx context.Context, number int) (model.Table, error) {
	args := m.Called(ctx, number)
	t, _ := args.Get(0).(model.Table)
	return t, args.Error(1)
}

func (m *TableRepoMock) FindByNumberForUpdate(ctx context.Context, number int) (model.Table, error) {
	args := m.Called(ctx, number)
	t, _ := args.Get(0).(model.Table)
	return t, args.Error(1)
}

func (m *TableRepoMock) ListFree(ctx context.Context) ([]model.Table, error) {
	args := m.Called(ctx)
	tables, _ := args.Get(0).([]model.Table)
	return tables, args.Error(1)
}

func (m *TableRepoMock) AssignUser(ctx context.Context, number int, userID int64) error {
	args := m.Called(ctx, number, userID)
	return args.Error(0)
}

func (m *TableRepoMock) ClearUser(ctx context.Context, number int) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func (m *TableRepoMock) Create(ctx context.Context, t model.Table) (model.Table, error) {
	args := m.Called(ctx, t)
	out, _ := args.Get(0).(model.Table)
	return out, args.Error(1)
}

var _ repo.TableRepository = (*TableRepoMock)(nil)

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) FindByUserAndItem(ctx context.Context, userID int64, itemID int64) (model.CartItem, error) {
	args := m.Called(ctx, userID, itemID)
	ci, _ := args.Get(0).(model.CartItem)
	return ci, args.Error(1)
}

func (m *CartItemRepoMock) Create(ctx context.Context, ci model.CartItem) error {
	args := m.Called(ctx, ci)
	return args.Error(0)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, userID int64, itemID int64, qty int64) error {
	args := m.Called(ctx, userID, itemID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByUserAndItem(ctx context.Context, userID int64, itemID int64) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *CartItemRepoMock) ListWithItemByUserID(ctx context.Context, userID int64) ([]repo.CartItemWithItem, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]repo.CartItemWithItem)
	return rows, args.Error(1)
}

func (m *CartItemRepoMock) DeleteAllByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ repo.CartItemRepository = (*CartItemRepoMock)(nil)

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) SetCompleted(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

var _ repo.OrderRepository = (*OrderRepoMock)(nil)

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

func (m *OrderItemRepoMock) ListWithNameByOrderID(ctx context.Context, orderID int64) ([]repo.OrderItemWithName, error) {
	args := m.Called(ctx, orderID)
	rows, _ := args.Get(0).([]repo.OrderItemWithName)
	return rows, args.Error(1)
}

var _ repo.OrderItemRepository = (*OrderItemRepoMock)(nil)

// =====================
// TxManager / TxRepos モック
// =====================

// WithinTxの中で渡すreposを固定してunitテストを回す
type TxReposStub struct {
	tables     repo.TableRepository
	items      repo.ItemRepository
	cartItems  repo.CartItemRepository
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
}

func (r *TxReposStub) Tables() repo.TableRepository         { return r.tables }
func (r *TxReposStub) Items() repo.ItemRepository           { return r.items }
func (r *TxReposStub) CartItems() repo.CartItemRepository   { return r.cartItems }
func (r *TxReposStub) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposStub) OrderItems() repo.OrderItemRepository { return r.orderItems }

type TxManagerMock struct {
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.Repos)
}

var _ repo.TransactionManager = (*TxManagerMock)(nil)
