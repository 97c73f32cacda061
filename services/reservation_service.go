package services

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"foodchef/entity"
	"foodchef/pkg/logging"
	"foodchef/pkg/notify"
	"foodchef/repository"
)

type ReservationService struct {
	DB       *gorm.DB
	Repo     *repository.ReservationRepository
	Log      *logrus.Logger
	Notifier notify.Notifier

	// bookings accepted per (date, time) slot
	TotalTables int
}

func NewReservationService(db *gorm.DB, repo *repository.ReservationRepository, log *logrus.Logger, notifier notify.Notifier, totalTables int) *ReservationService {
	if totalTables <= 0 {
		totalTables = 20
	}
	return &ReservationService{DB: db, Repo: repo, Log: log, Notifier: notifier, TotalTables: totalTables}
}

// ----- DTOs -----

type CreateReservationReq struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ReservationDate string `json:"reservationDate"`
	ReservationTime string `json:"reservationTime"`
	Guests          int    `json:"guests"`
	Message         string `json:"message"`
}

type CreateReservationRes struct {
	ID uint `json:"reservationId"`
}

type Availability struct {
	Available       bool  `json:"available"`
	AvailableTables int64 `json:"availableTables"`
	TotalTables     int   `json:"totalTables"`
	BookedTables    int64 `json:"bookedTables"`
}

type ReservationStats struct {
	repository.ReservationTotals
	PopularTimes []repository.PopularTime `json:"popularTimes"`
}

type ReminderReport struct {
	Sent  int `json:"sent"`
	Total int `json:"total"`
}

var validReservationStatuses = map[string]bool{
	entity.ReservationPending:   true,
	entity.ReservationConfirmed: true,
	entity.ReservationCancelled: true,
	entity.ReservationCompleted: true,
}

// ----- Operations -----

func (s *ReservationService) CheckAvailability(date, timeOfDay string, guests int) (*Availability, error) {
	booked, err := s.Repo.CountBookedForSlot(s.DB, date, timeOfDay)
	if err != nil {
		return nil, s.dbFail("availability check", err)
	}
	av := s.availability(booked)
	s.Log.WithFields(logrus.Fields{
		"date":             date,
		"time":             timeOfDay,
		"guests":           guests,
		"available_tables": av.AvailableTables,
		"booked_tables":    av.BookedTables,
		"can_accommodate":  av.Available,
	}).Info("availability check")
	return av, nil
}

func (s *ReservationService) availability(booked int64) *Availability {
	available := int64(s.TotalTables) - booked
	return &Availability{
		Available:       available > 0,
		AvailableTables: available,
		TotalTables:     s.TotalTables,
		BookedTables:    booked,
	}
}

// Create validates, re-checks the slot and inserts in one transaction so
// the capacity read and the insert commit together.
func (s *ReservationService) Create(req *CreateReservationReq) (*CreateReservationRes, error) {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return nil, missingField("name")
	case strings.TrimSpace(req.Email) == "":
		return nil, missingField("email")
	case strings.TrimSpace(req.ReservationDate) == "":
		return nil, missingField("reservation_date")
	case strings.TrimSpace(req.ReservationTime) == "":
		return nil, missingField("reservation_time")
	case req.Guests < 1:
		return nil, missingField("guests")
	}
	if _, err := time.Parse("2006-01-02", req.ReservationDate); err != nil {
		return nil, invalidField("reservation_date", "must be YYYY-MM-DD")
	}

	res := entity.Reservation{
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		Guests:          req.Guests,
		Message:         req.Message,
		Status:          entity.ReservationPending,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		booked, err := s.Repo.CountBookedForSlot(tx, req.ReservationDate, req.ReservationTime)
		if err != nil {
			return err
		}
		if booked >= int64(s.TotalTables) {
			return ErrNoAvailability
		}
		return s.Repo.Create(tx, &res)
	})
	if err != nil {
		if errors.Is(err, ErrNoAvailability) {
			return nil, err
		}
		return nil, s.dbFail("create reservation", err)
	}

	logging.Reservation(s.Log, "created", logrus.Fields{
		"reservation_id": res.ID,
		"name":           res.Name,
		"date":           res.ReservationDate,
		"time":           res.ReservationTime,
		"guests":         res.Guests,
	})
	return &CreateReservationRes{ID: res.ID}, nil
}

func (s *ReservationService) Get(id uint) (*entity.Reservation, error) {
	res, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, s.dbFail("get reservation", err)
	}
	return res, nil
}

func (s *ReservationService) UpdateStatus(id uint, status string) error {
	if !validReservationStatuses[status] {
		return invalidField("status", "unknown status "+status)
	}
	affected, err := s.Repo.UpdateStatus(id, status)
	if err != nil {
		return s.dbFail("update reservation status", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	logging.Reservation(s.Log, "status_updated", logrus.Fields{
		"reservation_id": id,
		"new_status":     status,
	})
	return nil
}

// Cancel forces the status to cancelled regardless of the current state
// and appends the reason to the message, keeping what was there.
func (s *ReservationService) Cancel(id uint, reason string) error {
	res, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return s.dbFail("cancel reservation", err)
	}

	res.Status = entity.ReservationCancelled
	res.Message = strings.TrimSpace(res.Message + " Cancelled: " + reason)
	if err := s.Repo.Save(res); err != nil {
		return s.dbFail("cancel reservation", err)
	}

	logging.Reservation(s.Log, "cancelled", logrus.Fields{
		"reservation_id": id,
		"reason":         reason,
	})
	return nil
}

func (s *ReservationService) ListByDate(date string) ([]entity.Reservation, error) {
	out, err := s.Repo.ListByDate(date)
	if err != nil {
		return nil, s.dbFail("list reservations by date", err)
	}
	return out, nil
}

func (s *ReservationService) Upcoming(limit int) ([]entity.Reservation, error) {
	today := time.Now().Format("2006-01-02")
	out, err := s.Repo.ListUpcoming(today, limit)
	if err != nil {
		return nil, s.dbFail("list upcoming reservations", err)
	}
	return out, nil
}

func (s *ReservationService) Latest(limit int) ([]entity.Reservation, error) {
	out, err := s.Repo.ListLatest(limit)
	if err != nil {
		return nil, s.dbFail("list latest reservations", err)
	}
	return out, nil
}

// Statistics defaults to the current month when the range is empty.
func (s *ReservationService) Statistics(startDate, endDate string) (*ReservationStats, error) {
	if startDate == "" || endDate == "" {
		now := time.Now()
		startDate = now.Format("2006-01") + "-01"
		endDate = now.AddDate(0, 1, -now.Day()).Format("2006-01-02")
	}

	totals, err := s.Repo.Totals(startDate, endDate)
	if err != nil {
		return nil, s.dbFail("reservation statistics", err)
	}
	popular, err := s.Repo.PopularTimes(startDate, endDate, 5)
	if err != nil {
		return nil, s.dbFail("reservation statistics", err)
	}
	return &ReservationStats{ReservationTotals: *totals, PopularTimes: popular}, nil
}

// SendReminders flips the reminder flag for confirmed reservations due
// in daysAhead days. A failed notification does not block the flag; the
// flag is what prevents duplicate sends.
func (s *ReservationService) SendReminders(daysAhead int) (*ReminderReport, error) {
	if daysAhead < 0 {
		daysAhead = 1
	}
	date := time.Now().AddDate(0, 0, daysAhead).Format("2006-01-02")

	due, err := s.Repo.DueForReminder(date)
	if err != nil {
		return nil, s.dbFail("send reminders", err)
	}

	sent := 0
	for i := range due {
		r := &due[i]
		if err := s.Notifier.Send(r.Email, "Reservation Reminder - Food Chef Cafe", reminderBody(r)); err != nil {
			s.Log.WithFields(logrus.Fields{"reservation_id": r.ID, "error": err.Error()}).
				Warning("reminder delivery failed")
		}
		if err := s.Repo.MarkReminderSent(r.ID); err != nil {
			s.Log.WithFields(logrus.Fields{"reservation_id": r.ID, "error": err.Error()}).
				Error("mark reminder sent failed")
			continue
		}
		sent++
	}

	s.Log.WithFields(logrus.Fields{
		"date":       date,
		"sent_count": sent,
		"total":      len(due),
	}).Info("reminders sent")
	return &ReminderReport{Sent: sent, Total: len(due)}, nil
}

func (s *ReservationService) dbFail(op string, err error) error {
	s.Log.WithFields(logrus.Fields{"op": op, "error": err.Error()}).Error("database error")
	return ErrDatabase
}
