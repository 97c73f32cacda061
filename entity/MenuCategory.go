package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	SortOrder   int    `gorm:"default:0" json:"sortOrder"`
	IsActive    bool   `json:"isActive"`

	Foods []Food `gorm:"foreignKey:CategoryID" json:"-"`
}
