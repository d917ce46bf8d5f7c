package repository

import (
	"context"

	"app/internal/domain/model"
)

type TableRepository interface {
	// テーブル番号で1件取得。無ければErrNotFound。
	FindByNumber(ctx context.Context, number int) (model.Table, error)
	// FOR UPDATEで行ロックして取得。チェックアウトの同時実行を直列化する。
	FindByNumberForUpdate(ctx context.Context, number int) (model.Table, error)
	// 空席一覧（番号の昇順）
	ListFree(ctx context.Context) ([]model.Table, error)
	// 占有者を設定
	AssignUser(ctx context.Context, number int, userID int64) error
	// 占有者を解除
	ClearUser(ctx context.Context, number int) error
	Create(ctx context.Context, t model.Table) (model.Table, error)
}
