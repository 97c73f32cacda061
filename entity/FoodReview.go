package entity

import (
	"time"

	"gorm.io/gorm"
)

type FoodReview struct {
	gorm.Model
	FoodID uint `gorm:"not null;index" json:"foodId"`
	Food   Food `json:"-"`

	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerEmail string `gorm:"not null" json:"customerEmail"`
	Rating        int    `gorm:"not null" json:"rating"`
	Review        string `gorm:"not null" json:"review"`

	IsApproved  bool       `gorm:"default:false;index" json:"isApproved"`
	AdminNotes  string     `json:"adminNotes"`
	ModeratedAt *time.Time `json:"moderatedAt"`
}
