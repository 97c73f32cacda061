package repository

import (
	"time"

	"foodchef/entity"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

// ---------------- Customer feedback ----------------

func (r *FeedbackRepository) CreateFeedback(f *entity.CustomerFeedback) error {
	return r.DB.Create(f).Error
}

func (r *FeedbackRepository) GetFeedback(id uint) (*entity.CustomerFeedback, error) {
	var f entity.CustomerFeedback
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FeedbackRepository) UpdateFeedbackStatus(id uint, status string) (int64, error) {
	res := r.DB.Model(&entity.CustomerFeedback{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// DeleteFeedback removes the row for good, not a soft delete.
func (r *FeedbackRepository) DeleteFeedback(id uint) (int64, error) {
	res := r.DB.Unscoped().Delete(&entity.CustomerFeedback{}, id)
	return res.RowsAffected, res.Error
}

func (r *FeedbackRepository) HistoryByEmail(email string) ([]entity.CustomerFeedback, error) {
	var out []entity.CustomerFeedback
	err := r.DB.Where("customer_email = ?", email).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

type FeedbackTotals struct {
	TotalFeedback    int64   `json:"totalFeedback"`
	AvgRating        float64 `json:"avgRating"`
	PositiveFeedback int64   `json:"positiveFeedback"`
	NeutralFeedback  int64   `json:"neutralFeedback"`
	NegativeFeedback int64   `json:"negativeFeedback"`
}

func (r *FeedbackRepository) Totals(start, end time.Time) (*FeedbackTotals, error) {
	var t FeedbackTotals
	err := r.DB.Model(&entity.CustomerFeedback{}).
		Select(`COUNT(*) AS total_feedback,
			COALESCE(AVG(rating), 0) AS avg_rating,
			COUNT(CASE WHEN rating >= 4 THEN 1 END) AS positive_feedback,
			COUNT(CASE WHEN rating = 3 THEN 1 END) AS neutral_feedback,
			COUNT(CASE WHEN rating <= 2 THEN 1 END) AS negative_feedback`).
		Where("created_at BETWEEN ? AND ?", start, end).
		Scan(&t).Error
	return &t, err
}

type FeedbackTypeCount struct {
	FeedbackType string  `json:"feedbackType"`
	Count        int64   `json:"count"`
	AvgRating    float64 `json:"avgRating"`
}

func (r *FeedbackRepository) TypeBreakdown(start, end time.Time) ([]FeedbackTypeCount, error) {
	var out []FeedbackTypeCount
	err := r.DB.Model(&entity.CustomerFeedback{}).
		Select("feedback_type, COUNT(*) AS count, COALESCE(AVG(rating), 0) AS avg_rating").
		Where("created_at BETWEEN ? AND ?", start, end).
		Group("feedback_type").
		Order("count DESC").
		Scan(&out).Error
	return out, err
}

// ---------------- Food reviews ----------------

func (r *FeedbackRepository) CreateReview(rv *entity.FoodReview) error {
	return r.DB.Create(rv).Error
}

func (r *FeedbackRepository) GetReview(id uint) (*entity.FoodReview, error) {
	var rv entity.FoodReview
	if err := r.DB.First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

// FindActiveFood resolves a food row only when it exists and is active.
func (r *FeedbackRepository) FindActiveFood(id uint) (*entity.Food, error) {
	var f entity.Food
	err := r.DB.Where("id = ? AND is_active = ?", id, true).First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FeedbackRepository) SetModeration(id uint, approved bool, adminNotes string, at time.Time) (int64, error) {
	res := r.DB.Model(&entity.FoodReview{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_approved":  approved,
			"admin_notes":  adminNotes,
			"moderated_at": at,
		})
	return res.RowsAffected, res.Error
}

// RefreshFoodRating recomputes the cached average and count on the food
// row from all currently-approved reviews. Full recompute, no
// incremental drift.
func (r *FeedbackRepository) RefreshFoodRating(foodID uint) error {
	var agg struct {
		Avg   float64
		Count int64
	}
	err := r.DB.Model(&entity.FoodReview{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("food_id = ? AND is_approved = ?", foodID, true).
		Scan(&agg).Error
	if err != nil {
		return err
	}
	return r.DB.Model(&entity.Food{}).
		Where("id = ?", foodID).
		Updates(map[string]any{
			"avg_rating":    agg.Avg,
			"total_reviews": agg.Count,
		}).Error
}

func (r *FeedbackRepository) ApprovedReviews(foodID uint, limit int) ([]entity.FoodReview, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []entity.FoodReview
	err := r.DB.Where("food_id = ? AND is_approved = ?", foodID, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

type PendingReview struct {
	ID            uint      `json:"id"`
	FoodID        uint      `json:"foodId"`
	FoodName      string    `json:"foodName"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	Rating        int       `json:"rating"`
	Review        string    `json:"review"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PendingReviews is the moderation queue, oldest first.
func (r *FeedbackRepository) PendingReviews(limit int) ([]PendingReview, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []PendingReview
	err := r.DB.Table("food_reviews AS fr").
		Select(`fr.id, fr.food_id, f.name AS food_name, fr.customer_name,
			fr.customer_email, fr.rating, fr.review, fr.created_at`).
		Joins("JOIN foods f ON f.id = fr.food_id").
		Where("fr.is_approved = ? AND fr.deleted_at IS NULL", false).
		Order("fr.created_at ASC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

type ReviewTotals struct {
	TotalReviews    int64   `json:"totalReviews"`
	ApprovedReviews int64   `json:"approvedReviews"`
	PendingReviews  int64   `json:"pendingReviews"`
	AvgFoodRating   float64 `json:"avgFoodRating"`
}

func (r *FeedbackRepository) ReviewTotals(start, end time.Time) (*ReviewTotals, error) {
	var t ReviewTotals
	err := r.DB.Model(&entity.FoodReview{}).
		Select(`COUNT(*) AS total_reviews,
			COUNT(CASE WHEN is_approved THEN 1 END) AS approved_reviews,
			COUNT(CASE WHEN NOT is_approved THEN 1 END) AS pending_reviews,
			COALESCE(AVG(rating), 0) AS avg_food_rating`).
		Where("created_at BETWEEN ? AND ?", start, end).
		Scan(&t).Error
	return &t, err
}
