package model

// 物理テーブル。UserIDがnilなら空席。
type Table struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Number int    `gorm:"uniqueIndex;not null" json:"number"`
	UserID *int64 `gorm:"index" json:"userId,omitempty"`
}
