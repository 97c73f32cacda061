package entity

import (
	"gorm.io/gorm"
)

const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
	OrderCompleted = "completed"
)

const (
	OrderTypeDineIn   = "dine_in"
	OrderTypeTakeaway = "takeaway"
	OrderTypeDelivery = "delivery"
)

type Order struct {
	gorm.Model
	Reference     string `gorm:"uniqueIndex;size:36" json:"reference"`
	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerEmail string `gorm:"not null;index" json:"customerEmail"`
	CustomerPhone string `gorm:"not null" json:"customerPhone"`

	// cents, always recomputed from food prices at creation
	TotalAmount int64 `gorm:"not null" json:"totalAmount"`

	OrderType           string `gorm:"not null;default:dine_in" json:"orderType"`
	DeliveryAddress     string `json:"deliveryAddress"`
	SpecialInstructions string `json:"specialInstructions"`

	Status string `gorm:"not null;default:pending;index" json:"status"`
	Notes  string `json:"notes"`

	OrderItems []OrderItem `json:"items"`
}
