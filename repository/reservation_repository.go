package repository

import (
	"foodchef/entity"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

// slotStatuses are the statuses that hold a table.
var slotStatuses = []string{entity.ReservationPending, entity.ReservationConfirmed}

func (r *ReservationRepository) CountBookedForSlot(tx *gorm.DB, date, timeOfDay string) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.Reservation{}).
		Where("reservation_date = ? AND reservation_time = ? AND status IN ?", date, timeOfDay, slotStatuses).
		Count(&cnt).Error
	return cnt, err
}

func (r *ReservationRepository) Create(tx *gorm.DB, res *entity.Reservation) error {
	return tx.Create(res).Error
}

func (r *ReservationRepository) FindByID(id uint) (*entity.Reservation, error) {
	var res entity.Reservation
	if err := r.DB.First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) Save(res *entity.Reservation) error {
	return r.DB.Save(res).Error
}

// UpdateStatus sets the status and refreshes updated_at; returns rows affected.
func (r *ReservationRepository) UpdateStatus(id uint, status string) (int64, error) {
	res := r.DB.Model(&entity.Reservation{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *ReservationRepository) ListByDate(date string) ([]entity.Reservation, error) {
	var out []entity.Reservation
	err := r.DB.Where("reservation_date = ?", date).
		Order("reservation_time ASC").
		Find(&out).Error
	return out, err
}

func (r *ReservationRepository) ListUpcoming(today string, limit int) ([]entity.Reservation, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []entity.Reservation
	err := r.DB.Where("reservation_date >= ? AND status IN ?", today, slotStatuses).
		Order("reservation_date ASC, reservation_time ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *ReservationRepository) ListLatest(limit int) ([]entity.Reservation, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Reservation
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

type ReservationTotals struct {
	TotalReservations int64   `json:"totalReservations"`
	Confirmed         int64   `json:"confirmed"`
	Pending           int64   `json:"pending"`
	Cancelled         int64   `json:"cancelled"`
	Completed         int64   `json:"completed"`
	AvgGuests         float64 `json:"avgGuests"`
	TotalGuests       int64   `json:"totalGuests"`
}

func (r *ReservationRepository) Totals(startDate, endDate string) (*ReservationTotals, error) {
	var t ReservationTotals
	err := r.DB.Model(&entity.Reservation{}).
		Select(`COUNT(*) AS total_reservations,
			COUNT(CASE WHEN status = 'confirmed' THEN 1 END) AS confirmed,
			COUNT(CASE WHEN status = 'pending' THEN 1 END) AS pending,
			COUNT(CASE WHEN status = 'cancelled' THEN 1 END) AS cancelled,
			COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed,
			COALESCE(AVG(guests), 0) AS avg_guests,
			COALESCE(SUM(guests), 0) AS total_guests`).
		Where("reservation_date BETWEEN ? AND ?", startDate, endDate).
		Scan(&t).Error
	return &t, err
}

type PopularTime struct {
	ReservationTime string `json:"reservationTime"`
	Count           int64  `json:"count"`
}

func (r *ReservationRepository) PopularTimes(startDate, endDate string, limit int) ([]PopularTime, error) {
	var out []PopularTime
	err := r.DB.Model(&entity.Reservation{}).
		Select("reservation_time, COUNT(*) AS count").
		Where("reservation_date BETWEEN ? AND ? AND status IN ?",
			startDate, endDate, []string{entity.ReservationConfirmed, entity.ReservationCompleted}).
		Group("reservation_time").
		Order("count DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// DueForReminder lists confirmed reservations on the given date whose
// reminder has not gone out yet.
func (r *ReservationRepository) DueForReminder(date string) ([]entity.Reservation, error) {
	var out []entity.Reservation
	err := r.DB.Where("reservation_date = ? AND status = ? AND reminder_sent = ?",
		date, entity.ReservationConfirmed, false).
		Find(&out).Error
	return out, err
}

func (r *ReservationRepository) MarkReminderSent(id uint) error {
	return r.DB.Model(&entity.Reservation{}).
		Where("id = ?", id).
		Update("reminder_sent", true).Error
}
