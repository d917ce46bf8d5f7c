package model

import "time"

// 注文。amountとtable_numberはチェックアウト時点のスナップショット。
type Order struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64     `gorm:"not null;index" json:"userId"`
	TableNumber int       `gorm:"not null" json:"tableNumber"`
	Amount      int64     `gorm:"not null" json:"amount"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}
