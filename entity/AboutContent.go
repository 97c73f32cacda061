package entity

import (
	"gorm.io/gorm"
)

type AboutContent struct {
	gorm.Model
	Title    string `gorm:"not null" json:"title"`
	Content  string `json:"content"`
	Mission  string `json:"mission"`
	Vision   string `json:"vision"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}
