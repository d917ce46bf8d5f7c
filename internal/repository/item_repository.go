package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

// item + category をまとめた読み取り専用の行
type ItemWithCategory struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       int64          `json:"price"`
	Image       string         `json:"image"`
	Category    model.Category `json:"category"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type ItemRepository interface {
	Create(ctx context.Context, item model.Item) (model.Item, error)
	FindByID(ctx context.Context, id int64) (model.Item, error)
	// 名前は一意。無ければErrNotFound。
	FindByName(ctx context.Context, name string) (model.Item, error)
	Delete(ctx context.Context, id int64) error
	// カタログ一覧（カテゴリは明示クエリで読んで合成する）
	ListWithCategory(ctx context.Context) ([]ItemWithCategory, error)
}
