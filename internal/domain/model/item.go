package model

import "time"

// メニューのカタログ1件。価格は最小通貨単位のint64。
type Item struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	Image       string    `gorm:"type:text;not null" json:"image"`
	CategoryID  int64     `gorm:"not null;index" json:"categoryId"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
