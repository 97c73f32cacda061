package entity

import (
	"gorm.io/gorm"
)

// Food name and unit price are snapshotted at order time; rows are
// never updated after insert.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`

	FoodID   uint   `gorm:"not null" json:"foodId"`
	Food     Food   `json:"-"`
	FoodName string `gorm:"not null" json:"foodName"`

	Quantity   int   `gorm:"not null" json:"quantity"`
	UnitPrice  int64 `gorm:"not null" json:"unitPrice"`
	TotalPrice int64 `gorm:"not null" json:"totalPrice"`
}
