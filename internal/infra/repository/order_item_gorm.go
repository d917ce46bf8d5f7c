package repository

import (
	"context"

	"app/internal/domain/model"
	domainrepo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		it.OrderID = orderID
		rows = append(rows, it)
	}

	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem

	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.OrderItem{}, err
	}

	return items, nil
}

// 表示用にitem名をjoinして返す
func (r *OrderItemGormRepository) ListWithNameByOrderID(ctx context.Context, orderID int64) ([]domainrepo.OrderItemWithName, error) {
	var rows []domainrepo.OrderItemWithName

	err := r.db.WithContext(ctx).
		Model(&model.OrderItem{}).
		Select("order_items.quantity AS quantity, items.name AS item_name").
		Joins("JOIN items ON items.id = order_items.item_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id asc").
		Scan(&rows).Error
	if err != nil {
		return []domainrepo.OrderItemWithName{}, err
	}

	return rows, nil
}
