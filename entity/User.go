package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	FullName string `json:"fullName"`
	Role     string `gorm:"not null;default:staff" json:"role"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}
