package model

import "time"

// カート明細。(user_id, item_id)の複合キー。
// quantityは常に1以上。0にする操作は行削除になる。
type CartItem struct {
	UserID    int64     `gorm:"primaryKey" json:"userId"`
	ItemID    int64     `gorm:"primaryKey" json:"itemId"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
