package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	domainrepo "app/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

func (r *CartItemGormRepository) FindByUserAndItem(ctx context.Context, userID int64, itemID int64) (model.CartItem, error) {
	var ci model.CartItem

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&ci).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItem{}, domainrepo.ErrNotFound
	}
	if err != nil {
		return model.CartItem{}, err
	}
	return ci, nil
}

func (r *CartItemGormRepository) Create(ctx context.Context, ci model.CartItem) error {
	return r.db.WithContext(ctx).Create(&ci).Error
}

func (r *CartItemGormRepository) UpdateQuantity(ctx context.Context, userID int64, itemID int64, qty int64) error {
	if qty < 1 {
		return errors.New("invalid quantity")
	}

	res := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Update("quantity", qty)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

func (r *CartItemGormRepository) DeleteByUserAndItem(ctx context.Context, userID int64, itemID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&model.CartItem{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

// カート全行をitem情報込みで取得。
// チェックアウトが読む行なので、トランザクション内ではカート行をFOR UPDATEでロックする。
func (r *CartItemGormRepository) ListWithItemByUserID(ctx context.Context, userID int64) ([]domainrepo.CartItemWithItem, error) {
	var rows []domainrepo.CartItemWithItem

	err := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Select("cart_items.item_id AS item_id, items.name AS name, items.price AS price, items.image AS image, cart_items.quantity AS quantity").
		Joins("JOIN items ON items.id = cart_items.item_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.item_id asc").
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "cart_items"}}).
		Scan(&rows).Error

	if err != nil {
		return []domainrepo.CartItemWithItem{}, err
	}

	return rows, nil
}

func (r *CartItemGormRepository) DeleteAllByUserID(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{}).Error
}
