package repository

import (
	"context"

	"app/internal/domain/model"
)

type CategoryRepository interface {
	ListAll(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	Create(ctx context.Context, c model.Category) (model.Category, error)
}
