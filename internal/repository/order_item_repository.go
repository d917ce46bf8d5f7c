package repository

import (
	"context"

	"app/internal/domain/model"
)

// 注文明細 + 表示用のitem名
type OrderItemWithName struct {
	Quantity int64
	ItemName string
}

type OrderItemRepository interface {
	// 注文明細の一括作成（orderIDを各行に差し込む）
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	// 表示用：item名を明示joinで引いた明細一覧
	ListWithNameByOrderID(ctx context.Context, orderID int64) ([]OrderItemWithName, error)
}
