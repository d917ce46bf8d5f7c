package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCartFixture() (*usecase.CartUsecase, *CartItemRepoMock, *ItemRepoMock) {
	cartRepo := new(CartItemRepoMock)
	itemRepo := new(ItemRepoMock)
	return usecase.NewCartUsecase(cartRepo, itemRepo), cartRepo, itemRepo
}

func TestAddToCart_NewItem(t *testing.T) {
	uc, cartRepo, itemRepo := newCartFixture()
	ctx := context.Background()

	itemRepo.On("FindByID", ctx, int64(3)).Return(model.Item{ID: 3, Name: "Ramen", Price: 100}, nil)
	cartRepo.On("FindByUserAndItem", ctx, int64(7), int64(3)).Return(model.CartItem{}, repo.ErrNotFound)
	cartRepo.On("Create", ctx, model.CartItem{UserID: 7, ItemID: 3, Quantity: 2}).Return(nil)

	err := uc.AddToCart(ctx, 7, usecase.AddToCartInput{ItemID: 3, Quantity: 2})

	assert.NoError(t, err)
	cartRepo.AssertExpectations(t)
}

// 既にカートにある商品は数量を加算する
func TestAddToCart_MergesQuantity(t *testing.T) {
	uc, cartRepo, itemRepo := newCartFixture()
	ctx := context.Background()

	itemRepo.On("FindByID", ctx, int64(3)).Return(model.Item{ID: 3}, nil)
	cartRepo.On("FindByUserAndItem", ctx, int64(7), int64(3)).Return(model.CartItem{UserID: 7, ItemID: 3, Quantity: 2}, nil)
	cartRepo.On("UpdateQuantity", ctx, int64(7), int64(3), int64(5)).Return(nil)

	err := uc.AddToCart(ctx, 7, usecase.AddToCartInput{ItemID: 3, Quantity: 3})

	assert.NoError(t, err)
	cartRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	cartRepo.AssertExpectations(t)
}

func TestAddToCart_UnknownItem(t *testing.T) {
	uc, cartRepo, itemRepo := newCartFixture()
	ctx := context.Background()

	itemRepo.On("FindByID", ctx, int64(404)).Return(model.Item{}, repo.ErrNotFound)

	err := uc.AddToCart(ctx, 7, usecase.AddToCartInput{ItemID: 404, Quantity: 1})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)
	assert.Equal(t, "Item does not exist", he.Message)
	cartRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddToCart_InvalidQuantity(t *testing.T) {
	uc, _, itemRepo := newCartFixture()

	err := uc.AddToCart(context.Background(), 7, usecase.AddToCartInput{ItemID: 3, Quantity: 0})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)
	itemRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

// 数量0は削除
func TestUpdateCart_ZeroRemoves(t *testing.T) {
	uc, cartRepo, _ := newCartFixture()
	ctx := context.Background()

	cartRepo.On("FindByUserAndItem", ctx, int64(7), int64(3)).Return(model.CartItem{UserID: 7, ItemID: 3, Quantity: 2}, nil)
	cartRepo.On("DeleteByUserAndItem", ctx, int64(7), int64(3)).Return(nil)

	msg, err := uc.UpdateCart(ctx, 7, usecase.UpdateCartInput{ItemID: 3, Quantity: 0})

	assert.NoError(t, err)
	assert.Equal(t, "Cart item removed", msg)
	cartRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateCart_SetsQuantity(t *testing.T) {
	uc, cartRepo, _ := newCartFixture()
	ctx := context.Background()

	cartRepo.On("FindByUserAndItem", ctx, int64(7), int64(3)).Return(model.CartItem{UserID: 7, ItemID: 3, Quantity: 2}, nil)
	cartRepo.On("UpdateQuantity", ctx, int64(7), int64(3), int64(9)).Return(nil)

	msg, err := uc.UpdateCart(ctx, 7, usecase.UpdateCartInput{ItemID: 3, Quantity: 9})

	assert.NoError(t, err)
	assert.Equal(t, "Cart item updated", msg)
}

func TestUpdateCart_NotInCart(t *testing.T) {
	uc, cartRepo, _ := newCartFixture()
	ctx := context.Background()

	cartRepo.On("FindByUserAndItem", ctx, int64(7), int64(3)).Return(model.CartItem{}, repo.ErrNotFound)

	_, err := uc.UpdateCart(ctx, 7, usecase.UpdateCartInput{ItemID: 3, Quantity: 1})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "Item not found in cart", he.Message)
}

func TestGetCart_ComputesAmount(t *testing.T) {
	uc, cartRepo, _ := newCartFixture()
	ctx := context.Background()

	cartRepo.On("ListWithItemByUserID", ctx, int64(7)).Return([]repo.CartItemWithItem{
		{ItemID: 1, Name: "Ramen", Price: 100, Image: "http://img/ramen.png", Quantity: 2},
		{ItemID: 2, Name: "Gyoza", Price: 50, Image: "http://img/gyoza.png", Quantity: 1},
	}, nil)

	resp, err := uc.GetCart(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(250), resp.Amount)
	assert.Len(t, resp.CartItems, 2)
	assert.Equal(t, "Ramen", resp.CartItems[0].Item.Name)
	assert.Equal(t, int64(2), resp.CartItems[0].Quantity)
}

func TestGetCart_Empty(t *testing.T) {
	uc, cartRepo, _ := newCartFixture()
	ctx := context.Background()

	cartRepo.On("ListWithItemByUserID", ctx, int64(7)).Return([]repo.CartItemWithItem{}, nil)

	resp, err := uc.GetCart(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), resp.Amount)
	assert.Empty(t, resp.CartItems)
}
