package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	domainrepo "app/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TableGormRepository struct {
	db *gorm.DB
}

// DI
func NewTableGormRepository(db *gorm.DB) *TableGormRepository {
	return &TableGormRepository{db: db}
}

func (r *TableGormRepository) FindByNumber(ctx context.Context, number int) (model.Table, error) {
	var t model.Table

	err := r.db.WithContext(ctx).Where("number = ?", number).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Table{}, domainrepo.ErrNotFound
	}
	if err != nil {
		return model.Table{}, err
	}
	return t, nil
}

// FOR UPDATEで行をロックする。トランザクション内で呼ぶこと。
func (r *TableGormRepository) FindByNumberForUpdate(ctx context.Context, number int) (model.Table, error) {
	var t model.Table

	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("number = ?", number).
		First(&t).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Table{}, domainrepo.ErrNotFound
	}
	if err != nil {
		return model.Table{}, err
	}
	return t, nil
}

// 空席一覧（番号の昇順）
func (r *TableGormRepository) ListFree(ctx context.Context) ([]model.Table, error) {
	var tables []model.Table

	if err := r.db.WithContext(ctx).
		Where("user_id IS NULL").
		Order("number asc").
		Find(&tables).Error; err != nil {
		return []model.Table{}, err
	}

	return tables, nil
}

func (r *TableGormRepository) AssignUser(ctx context.Context, number int, userID int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Table{}).
		Where("number = ?", number).
		Update("user_id", userID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

func (r *TableGormRepository) ClearUser(ctx context.Context, number int) error {
	res := r.db.WithContext(ctx).
		Model(&model.Table{}).
		Where("number = ?", number).
		Update("user_id", nil)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

func (r *TableGormRepository) Create(ctx context.Context, t model.Table) (model.Table, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.Table{}, err
	}
	return t, nil
}
