package services

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"foodchef/entity"
	"foodchef/pkg/notify"
	"foodchef/repository"
)

type FeedbackService struct {
	Repo     *repository.FeedbackRepository
	Log      *logrus.Logger
	Notifier notify.Notifier
}

func NewFeedbackService(repo *repository.FeedbackRepository, log *logrus.Logger, notifier notify.Notifier) *FeedbackService {
	return &FeedbackService{Repo: repo, Log: log, Notifier: notifier}
}

// ----- DTOs -----

type SubmitFeedbackReq struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Rating        int    `json:"rating"`
	FeedbackType  string `json:"feedbackType"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	OrderID       *uint  `json:"orderId"`
	ReservationID *uint  `json:"reservationId"`
	IsPublic      *bool  `json:"isPublic"`
}

type SubmitFeedbackRes struct {
	ID uint `json:"feedbackId"`
}

type SubmitReviewReq struct {
	FoodID        uint   `json:"foodId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Rating        int    `json:"rating"`
	Review        string `json:"review"`
}

type SubmitReviewRes struct {
	ID uint `json:"reviewId"`
}

type FeedbackStats struct {
	repository.FeedbackTotals
	ByType      []repository.FeedbackTypeCount `json:"byType"`
	FoodReviews repository.ReviewTotals        `json:"foodReviews"`
}

var validFeedbackTypes = map[string]bool{
	entity.FeedbackGeneral:     true,
	entity.FeedbackFoodQuality: true,
	entity.FeedbackService:     true,
	entity.FeedbackAmbiance:    true,
	entity.FeedbackDelivery:    true,
	entity.FeedbackReservation: true,
}

var validFeedbackStatuses = map[string]bool{
	entity.FeedbackPending:  true,
	entity.FeedbackReviewed: true,
	entity.FeedbackResolved: true,
}

// ----- Customer feedback -----

func (s *FeedbackService) SubmitFeedback(req *SubmitFeedbackReq) (*SubmitFeedbackRes, error) {
	switch {
	case strings.TrimSpace(req.CustomerName) == "":
		return nil, missingField("customer_name")
	case strings.TrimSpace(req.CustomerEmail) == "":
		return nil, missingField("customer_email")
	case req.Rating == 0:
		return nil, missingField("rating")
	case strings.TrimSpace(req.FeedbackType) == "":
		return nil, missingField("feedback_type")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, invalidField("rating", "must be between 1 and 5")
	}
	if !validFeedbackTypes[req.FeedbackType] {
		return nil, invalidField("feedback_type", "unknown feedback type "+req.FeedbackType)
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	fb := entity.CustomerFeedback{
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Rating:        req.Rating,
		FeedbackType:  req.FeedbackType,
		Subject:       req.Subject,
		Message:       req.Message,
		OrderID:       req.OrderID,
		ReservationID: req.ReservationID,
		IsPublic:      isPublic,
		Status:        entity.FeedbackPending,
	}
	if err := s.Repo.CreateFeedback(&fb); err != nil {
		return nil, s.dbFail("submit feedback", err)
	}

	s.Log.WithFields(logrus.Fields{
		"feedback_id":   fb.ID,
		"customer_name": fb.CustomerName,
		"rating":        fb.Rating,
		"type":          fb.FeedbackType,
	}).Info("customer feedback submitted")

	if err := s.Notifier.Send(fb.CustomerEmail, "Thank you for your feedback - Food Chef Cafe", feedbackAckBody(&fb)); err != nil {
		s.Log.WithFields(logrus.Fields{"feedback_id": fb.ID, "error": err.Error()}).
			Warning("feedback acknowledgment delivery failed")
	}
	return &SubmitFeedbackRes{ID: fb.ID}, nil
}

func (s *FeedbackService) UpdateFeedbackStatus(id uint, status string) error {
	if !validFeedbackStatuses[status] {
		return invalidField("status", "unknown status "+status)
	}
	affected, err := s.Repo.UpdateFeedbackStatus(id, status)
	if err != nil {
		return s.dbFail("update feedback status", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *FeedbackService) DeleteFeedback(id uint) error {
	affected, err := s.Repo.DeleteFeedback(id)
	if err != nil {
		return s.dbFail("delete feedback", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	s.Log.WithFields(logrus.Fields{"feedback_id": id}).Info("feedback deleted")
	return nil
}

func (s *FeedbackService) CustomerHistory(email string) ([]entity.CustomerFeedback, error) {
	if strings.TrimSpace(email) == "" {
		return nil, missingField("customer_email")
	}
	out, err := s.Repo.HistoryByEmail(email)
	if err != nil {
		return nil, s.dbFail("customer feedback history", err)
	}
	return out, nil
}

// ----- Food reviews -----

// SubmitFoodReview stores the review unapproved. The cached food rating
// is untouched until a moderator approves it.
func (s *FeedbackService) SubmitFoodReview(req *SubmitReviewReq) (*SubmitReviewRes, error) {
	switch {
	case req.FoodID == 0:
		return nil, missingField("food_id")
	case strings.TrimSpace(req.CustomerName) == "":
		return nil, missingField("customer_name")
	case strings.TrimSpace(req.CustomerEmail) == "":
		return nil, missingField("customer_email")
	case req.Rating == 0:
		return nil, missingField("rating")
	case strings.TrimSpace(req.Review) == "":
		return nil, missingField("review")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, invalidField("rating", "must be between 1 and 5")
	}

	food, err := s.Repo.FindActiveFood(req.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, s.dbFail("submit food review", err)
	}

	rv := entity.FoodReview{
		FoodID:        food.ID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		Rating:        req.Rating,
		Review:        req.Review,
		IsApproved:    false,
	}
	if err := s.Repo.CreateReview(&rv); err != nil {
		return nil, s.dbFail("submit food review", err)
	}

	s.Log.WithFields(logrus.Fields{
		"review_id": rv.ID,
		"food_id":   food.ID,
		"food_name": food.Name,
		"rating":    rv.Rating,
	}).Info("food review submitted")
	return &SubmitReviewRes{ID: rv.ID}, nil
}

// ModerateReview approves or rejects a review. Approval recomputes the
// food's cached rating from scratch over the approved set.
func (s *FeedbackService) ModerateReview(id uint, approved bool, adminNotes string) error {
	rv, err := s.Repo.GetReview(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return s.dbFail("moderate review", err)
	}

	affected, err := s.Repo.SetModeration(id, approved, adminNotes, time.Now())
	if err != nil {
		return s.dbFail("moderate review", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if approved {
		if err := s.Repo.RefreshFoodRating(rv.FoodID); err != nil {
			return s.dbFail("moderate review", err)
		}
	}

	s.Log.WithFields(logrus.Fields{
		"review_id":   id,
		"approved":    approved,
		"admin_notes": adminNotes,
	}).Info("review moderated")
	return nil
}

func (s *FeedbackService) FoodReviews(foodID uint, limit int) ([]entity.FoodReview, error) {
	out, err := s.Repo.ApprovedReviews(foodID, limit)
	if err != nil {
		return nil, s.dbFail("get food reviews", err)
	}
	return out, nil
}

func (s *FeedbackService) PendingReviews(limit int) ([]repository.PendingReview, error) {
	out, err := s.Repo.PendingReviews(limit)
	if err != nil {
		return nil, s.dbFail("get pending reviews", err)
	}
	return out, nil
}

func (s *FeedbackService) Statistics(startDate, endDate string) (*FeedbackStats, error) {
	start, end, err := statsRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	totals, err := s.Repo.Totals(start, end)
	if err != nil {
		return nil, s.dbFail("feedback statistics", err)
	}
	byType, err := s.Repo.TypeBreakdown(start, end)
	if err != nil {
		return nil, s.dbFail("feedback statistics", err)
	}
	reviews, err := s.Repo.ReviewTotals(start, end)
	if err != nil {
		return nil, s.dbFail("feedback statistics", err)
	}
	return &FeedbackStats{
		FeedbackTotals: *totals,
		ByType:         byType,
		FoodReviews:    *reviews,
	}, nil
}

func (s *FeedbackService) dbFail(op string, err error) error {
	s.Log.WithFields(logrus.Fields{"op": op, "error": err.Error()}).Error("database error")
	return ErrDatabase
}
