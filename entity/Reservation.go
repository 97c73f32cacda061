package entity

import (
	"gorm.io/gorm"
)

const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
)

// A reservation occupies exactly one (date, time) slot.
// Date is "YYYY-MM-DD" and Time "HH:MM" so slot lookups are exact matches.
type Reservation struct {
	gorm.Model
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null" json:"email"`
	Phone string `json:"phone"`

	ReservationDate string `gorm:"size:10;not null;index:idx_reservation_slot" json:"reservationDate"`
	ReservationTime string `gorm:"size:5;not null;index:idx_reservation_slot" json:"reservationTime"`
	Guests          int    `gorm:"not null" json:"guests"`
	Message         string `json:"message"`

	Status       string `gorm:"not null;default:pending" json:"status"`
	ReminderSent bool   `gorm:"default:false" json:"reminderSent"`
}
