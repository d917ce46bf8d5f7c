package repository

import (
	"context"

	"app/internal/domain/model"
)

// カート行 + item（id/name/price/image）の読み取り専用行
type CartItemWithItem struct {
	ItemID   int64
	Name     string
	Price    int64
	Image    string
	Quantity int64
}

type CartItemRepository interface {
	// (user, item)で1件取得。無ければErrNotFound。
	FindByUserAndItem(ctx context.Context, userID int64, itemID int64) (model.CartItem, error)
	// 新規行を作成（既存行にはUpdateQuantityを使う）
	Create(ctx context.Context, ci model.CartItem) error
	// 数量を更新（qty >= 1）
	UpdateQuantity(ctx context.Context, userID int64, itemID int64, qty int64) error
	// 行を削除（qty 0 への更新はこれ）
	DeleteByUserAndItem(ctx context.Context, userID int64, itemID int64) error
	// ユーザーのカート全行をitem情報込みで取得（item_id昇順）
	ListWithItemByUserID(ctx context.Context, userID int64) ([]CartItemWithItem, error)
	// ユーザーのカートを全削除
	DeleteAllByUserID(ctx context.Context, userID int64) error
}
