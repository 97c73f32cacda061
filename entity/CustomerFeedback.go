package entity

import (
	"gorm.io/gorm"
)

const (
	FeedbackPending  = "pending"
	FeedbackReviewed = "reviewed"
	FeedbackResolved = "resolved"
)

const (
	FeedbackGeneral     = "general"
	FeedbackFoodQuality = "food_quality"
	FeedbackService     = "service"
	FeedbackAmbiance    = "ambiance"
	FeedbackDelivery    = "delivery"
	FeedbackReservation = "reservation"
)

type CustomerFeedback struct {
	gorm.Model
	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerEmail string `gorm:"not null;index" json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	Rating       int    `gorm:"not null" json:"rating"`
	FeedbackType string `gorm:"not null" json:"feedbackType"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`

	// optional linkage back to the transaction being rated
	OrderID       *uint `json:"orderId"`
	ReservationID *uint `json:"reservationId"`

	IsPublic bool   `json:"isPublic"`
	Status   string `gorm:"not null;default:pending" json:"status"`
}
