package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderFixture() (*usecase.OrderUsecase, *UserRepoMock, *TableRepoMock, *OrderRepoMock, *OrderItemRepoMock) {
	users := new(UserRepoMock)
	tableRepo := new(TableRepoMock)
	orderRepo := new(OrderRepoMock)
	orderItemRepo := new(OrderItemRepoMock)

	tx := &TxManagerMock{Repos: &TxReposStub{
		tables:     tableRepo,
		orders:     orderRepo,
		orderItems: orderItemRepo,
	}}

	return usecase.NewOrderUsecase(tx, users), users, tableRepo, orderRepo, orderItemRepo
}

// 完了処理は注文の完了とテーブル解放がセット
func TestCompleteOrder_Success(t *testing.T) {
	uc, _, tableRepo, orderRepo, _ := newOrderFixture()
	ctx := context.Background()

	orderRepo.On("FindByID", ctx, int64(42)).Return(model.Order{ID: 42, UserID: 7, TableNumber: 3}, nil)
	orderRepo.On("SetCompleted", ctx, int64(42)).Return(nil)
	tableRepo.On("ClearUser", ctx, 3).Return(nil)

	err := uc.CompleteOrder(ctx, 42)

	assert.NoError(t, err)
	orderRepo.AssertExpectations(t)
	tableRepo.AssertExpectations(t)
}

func TestCompleteOrder_NotFound(t *testing.T) {
	uc, _, tableRepo, orderRepo, _ := newOrderFixture()
	ctx := context.Background()

	orderRepo.On("FindByID", ctx, int64(404)).Return(model.Order{}, repo.ErrNotFound)

	err := uc.CompleteOrder(ctx, 404)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "Order not found", he.Message)
	orderRepo.AssertNotCalled(t, "SetCompleted", mock.Anything, mock.Anything)
	tableRepo.AssertNotCalled(t, "ClearUser", mock.Anything, mock.Anything)
}

func TestHistory_BuildsViews(t *testing.T) {
	uc, _, _, orderRepo, orderItemRepo := newOrderFixture()
	ctx := context.Background()

	created := time.Now()
	orderRepo.On("ListByUserID", ctx, int64(7)).Return([]model.Order{
		{ID: 1, UserID: 7, TableNumber: 2, Amount: 250, Completed: false, CreatedAt: created},
	}, nil)
	orderItemRepo.On("ListWithNameByOrderID", ctx, int64(1)).Return([]repo.OrderItemWithName{
		{Quantity: 2, ItemName: "Ramen"},
		{Quantity: 1, ItemName: "Gyoza"},
	}, nil)

	got, err := uc.History(ctx, 7)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(250), got[0].Amount)
	assert.Len(t, got[0].OrderItems, 2)
	assert.Equal(t, "Ramen", got[0].OrderItems[0].Item.Name)
	assert.Nil(t, got[0].User)
}

// スタッフ一覧は注文者名が付く
func TestListAll_IncludesUserName(t *testing.T) {
	uc, users, _, orderRepo, orderItemRepo := newOrderFixture()
	ctx := context.Background()

	orderRepo.On("ListAll", ctx).Return([]model.Order{
		{ID: 1, UserID: 7, TableNumber: 2, Amount: 100},
	}, nil)
	orderItemRepo.On("ListWithNameByOrderID", ctx, int64(1)).Return([]repo.OrderItemWithName{
		{Quantity: 1, ItemName: "Udon"},
	}, nil)
	users.On("FindByID", ctx, int64(7)).Return(&model.User{ID: 7, FirstName: "Taro", LastName: "Yamada"}, nil)

	got, err := uc.ListAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	if assert.NotNil(t, got[0].User) {
		assert.Equal(t, "Taro", got[0].User.FirstName)
		assert.Equal(t, "Yamada", got[0].User.LastName)
	}
}
