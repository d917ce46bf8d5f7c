package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 空席テーブルの参照
type TableUsecase struct {
	tables repo.TableRepository
}

func NewTableUsecase(tables repo.TableRepository) *TableUsecase {
	return &TableUsecase{tables: tables}
}

type TableView struct {
	ID     int64 `json:"id"`
	Number int   `json:"number"`
}

// 空席一覧（番号の昇順）
func (u *TableUsecase) ListFree(ctx context.Context) ([]TableView, error) {
	tables, err := u.tables.ListFree(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return toTableViews(tables), nil
}

func toTableViews(tables []model.Table) []TableView {
	views := make([]TableView, 0, len(tables))
	for _, t := range tables {
		views = append(views, TableView{ID: t.ID, Number: t.Number})
	}
	return views
}
