package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	// 無ければErrNotFound。
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// completed=trueにする
	SetCompleted(ctx context.Context, orderID int64) error
	// 本人の注文一覧（未完了が先、次に新しい順）
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	// 全注文一覧（スタッフ用。並びは同上）
	ListAll(ctx context.Context) ([]model.Order, error)
}
