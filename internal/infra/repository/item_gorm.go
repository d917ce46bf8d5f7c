package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	domainrepo "app/internal/repository"

	"gorm.io/gorm"
)

type ItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewItemGormRepository(db *gorm.DB) *ItemGormRepository {
	return &ItemGormRepository{db: db}
}

func (r *ItemGormRepository) Create(ctx context.Context, item model.Item) (model.Item, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return model.Item{}, err
	}
	return item, nil
}

func (r *ItemGormRepository) FindByID(ctx context.Context, id int64) (model.Item, error) {
	var item model.Item

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, domainrepo.ErrNotFound
	}
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// 名前は一意制約あり
func (r *ItemGormRepository) FindByName(ctx context.Context, name string) (model.Item, error) {
	var item model.Item

	err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, domainrepo.ErrNotFound
	}
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}

func (r *ItemGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Item{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

// カタログ一覧。カテゴリは別クエリで読んでidで合成する（暗黙のリレーションロードはしない）。
func (r *ItemGormRepository) ListWithCategory(ctx context.Context) ([]domainrepo.ItemWithCategory, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []domainrepo.ItemWithCategory{}, err
	}

	var cats []model.Category
	if err := r.db.WithContext(ctx).Find(&cats).Error; err != nil {
		return []domainrepo.ItemWithCategory{}, err
	}

	byID := make(map[int64]model.Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}

	out := make([]domainrepo.ItemWithCategory, 0, len(items))
	for _, it := range items {
		out = append(out, domainrepo.ItemWithCategory{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Image:       it.Image,
			Category:    byID[it.CategoryID],
			CreatedAt:   it.CreatedAt,
		})
	}

	return out, nil
}
