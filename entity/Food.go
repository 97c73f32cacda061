package entity

import (
	"gorm.io/gorm"
)

type Food struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	// smallest currency unit (cents)
	Price     int64  `gorm:"not null" json:"price"`
	ImagePath string `json:"imagePath"`
	IsActive  bool   `json:"isActive"`

	// derived from approved reviews, refreshed on moderation
	AvgRating    float64 `gorm:"default:0" json:"avgRating"`
	TotalReviews int     `gorm:"default:0" json:"totalReviews"`

	CategoryID uint         `json:"categoryId"`
	Category   MenuCategory `json:"-"`

	OrderItems []OrderItem  `json:"-"`
	Reviews    []FoodReview `json:"-"`
}
