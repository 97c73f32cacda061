package entity

import (
	"gorm.io/gorm"
)

type TeamMember struct {
	gorm.Model
	Name          string `gorm:"not null" json:"name"`
	Position      string `gorm:"not null" json:"position"`
	Bio           string `json:"bio"`
	PhotoPath     string `json:"photoPath"`
	PositionOrder int    `gorm:"default:0" json:"positionOrder"`
	IsActive      bool   `gorm:"default:true" json:"isActive"`
}
