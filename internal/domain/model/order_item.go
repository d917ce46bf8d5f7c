package model

// 注文明細。チェックアウト時のカート内容の不変スナップショット。
type OrderItem struct {
	ID       int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID  int64 `gorm:"not null;index" json:"orderId"`
	ItemID   int64 `gorm:"not null;index" json:"itemId"`
	Quantity int64 `gorm:"not null" json:"quantity"`
}
