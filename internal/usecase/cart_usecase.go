package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// カートの業務ロジック
type CartUsecase struct {
	cartItems repo.CartItemRepository
	items     repo.ItemRepository
}

func NewCartUsecase(cartItems repo.CartItemRepository, items repo.ItemRepository) *CartUsecase {
	return &CartUsecase{
		cartItems: cartItems,
		items:     items,
	}
}

type AddToCartInput struct {
	ItemID   int64
	Quantity int64
}

type UpdateCartInput struct {
	ItemID   int64
	Quantity int64
}

type CartItemView struct {
	ItemID   int64        `json:"itemId"`
	Quantity int64        `json:"quantity"`
	Item     CartItemInfo `json:"item"`
}

type CartItemInfo struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image"`
}

type CartResponse struct {
	CartItems []CartItemView `json:"cartItems"`
	Amount    int64          `json:"amount"`
}

// カートに追加。同一itemは数量を加算する。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddToCartInput) error {
	if in.ItemID <= 0 || in.Quantity < 1 {
		return NewHTTPError(http.StatusForbidden, "Invalid cart input")
	}

	//itemの存在チェック
	if _, err := u.items.FindByID(ctx, in.ItemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusForbidden, "Item does not exist")
		}
		return NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	existing, err := u.cartItems.FindByUserAndItem(ctx, userID, in.ItemID)
	if err == nil {
		// 既存行は数量を加算
		if err := u.cartItems.UpdateQuantity(ctx, userID, in.ItemID, existing.Quantity+in.Quantity); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}
		return nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	if err := u.cartItems.Create(ctx, model.CartItem{
		UserID:   userID,
		ItemID:   in.ItemID,
		Quantity: in.Quantity,
	}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return nil
}

// 数量更新。0は行削除と等価。
// 返り値のmessageは"Cart item removed" / "Cart item updated"。
func (u *CartUsecase) UpdateCart(ctx context.Context, userID int64, in UpdateCartInput) (string, error) {
	if in.ItemID <= 0 || in.Quantity < 0 {
		return "", NewHTTPError(http.StatusForbidden, "Invalid cart input")
	}

	_, err := u.cartItems.FindByUserAndItem(ctx, userID, in.ItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return "", NewHTTPError(http.StatusNotFound, "Item not found in cart")
	}
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	if in.Quantity == 0 {
		if err := u.cartItems.DeleteByUserAndItem(ctx, userID, in.ItemID); err != nil {
			return "", NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}
		return "Cart item removed", nil
	}

	if err := u.cartItems.UpdateQuantity(ctx, userID, in.ItemID, in.Quantity); err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	return "Cart item updated", nil
}

// カート取得。amountはquantity×priceの合計。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	rows, err := u.cartItems.ListWithItemByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	views := make([]CartItemView, 0, len(rows))
	var amount int64 = 0
	for _, r := range rows {
		views = append(views, CartItemView{
			ItemID:   r.ItemID,
			Quantity: r.Quantity,
			Item: CartItemInfo{
				ID:    r.ItemID,
				Name:  r.Name,
				Price: r.Price,
				Image: r.Image,
			},
		})
		amount += r.Quantity * r.Price
	}

	return CartResponse{CartItems: views, Amount: amount}, nil
}
