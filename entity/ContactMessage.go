package entity

import (
	"gorm.io/gorm"
)

type ContactMessage struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Subject string `json:"subject"`
	Message string `gorm:"not null" json:"message"`
}
