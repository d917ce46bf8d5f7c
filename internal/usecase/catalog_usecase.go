package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// item入力の検証の約束
type ItemValidator interface {
	ValidateCreateItem(name string, description string, price int64, image string, categoryID int64) error
}

// カタログ（item/category）の業務ロジック
type CatalogUsecase struct {
	items      repo.ItemRepository
	categories repo.CategoryRepository
	validator  ItemValidator
}

func NewCatalogUsecase(items repo.ItemRepository, categories repo.CategoryRepository, validator ItemValidator) *CatalogUsecase {
	return &CatalogUsecase{
		items:      items,
		categories: categories,
		validator:  validator,
	}
}

type CreateItemInput struct {
	Name        string
	Description string
	Price       int64
	Image       string
	CategoryID  int64
}

// 公開カタログ一覧（カテゴリ込み）
func (u *CatalogUsecase) ListItems(ctx context.Context) ([]repo.ItemWithCategory, error) {
	items, err := u.items.ListWithCategory(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	return items, nil
}

func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	cats, err := u.categories.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	return cats, nil
}

// スタッフによるitem作成。名前は一意。
func (u *CatalogUsecase) CreateItem(ctx context.Context, in CreateItemInput) error {
	if err := u.validator.ValidateCreateItem(in.Name, in.Description, in.Price, in.Image, in.CategoryID); err != nil {
		return NewHTTPError(http.StatusForbidden, err.Error())
	}

	//名前の重複チェック
	_, err := u.items.FindByName(ctx, in.Name)
	if err == nil {
		return NewHTTPError(http.StatusBadRequest, "Item with this name already exists")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	_, err = u.items.Create(ctx, model.Item{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		CategoryID:  in.CategoryID,
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return nil
}

func (u *CatalogUsecase) DeleteItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusForbidden, "Invalid item id")
	}

	err := u.items.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Item not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return nil
}
