package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodchef/entity"
	"foodchef/pkg/notify"
	"foodchef/repository"
)

func newFeedbackService(t *testing.T) (*FeedbackService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	return NewFeedbackService(repository.NewFeedbackRepository(db), testLogger(), notify.Noop{}), db
}

func submitReview(t *testing.T, s *FeedbackService, foodID uint, rating int) uint {
	t.Helper()
	res, err := s.SubmitFoodReview(&SubmitReviewReq{
		FoodID:        foodID,
		CustomerName:  "Riley Park",
		CustomerEmail: "riley@example.com",
		Rating:        rating,
		Review:        "worth trying",
	})
	require.NoError(t, err)
	return res.ID
}

func TestSubmitFeedback(t *testing.T) {
	s, db := newFeedbackService(t)

	res, err := s.SubmitFeedback(&SubmitFeedbackReq{
		CustomerName:  "Riley Park",
		CustomerEmail: "riley@example.com",
		Rating:        5,
		FeedbackType:  entity.FeedbackService,
		Subject:       "Great evening",
		Message:       "Staff were lovely.",
	})
	require.NoError(t, err)

	var fb entity.CustomerFeedback
	require.NoError(t, db.First(&fb, res.ID).Error)
	require.Equal(t, entity.FeedbackPending, fb.Status)
	require.True(t, fb.IsPublic)
}

func TestSubmitFeedbackValidation(t *testing.T) {
	s, db := newFeedbackService(t)

	base := func() *SubmitFeedbackReq {
		return &SubmitFeedbackReq{
			CustomerName:  "Riley Park",
			CustomerEmail: "riley@example.com",
			Rating:        4,
			FeedbackType:  entity.FeedbackGeneral,
		}
	}

	tests := []struct {
		name   string
		mutate func(*SubmitFeedbackReq)
	}{
		{"missing name", func(r *SubmitFeedbackReq) { r.CustomerName = "" }},
		{"missing email", func(r *SubmitFeedbackReq) { r.CustomerEmail = "" }},
		{"rating too high", func(r *SubmitFeedbackReq) { r.Rating = 6 }},
		{"rating negative", func(r *SubmitFeedbackReq) { r.Rating = -1 }},
		{"unknown type", func(r *SubmitFeedbackReq) { r.FeedbackType = "parking" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(req)
			_, err := s.SubmitFeedback(req)
			require.True(t, IsValidation(err), "want validation error, got %v", err)
		})
	}

	var count int64
	require.NoError(t, db.Model(&entity.CustomerFeedback{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestSubmitReviewStartsUnapproved(t *testing.T) {
	s, db := newFeedbackService(t)
	food := seedFood(t, db, "Pasta", 1600, true)

	id := submitReview(t, s, food.ID, 5)

	var rv entity.FoodReview
	require.NoError(t, db.First(&rv, id).Error)
	require.False(t, rv.IsApproved)

	// cached rating untouched until moderation
	var f entity.Food
	require.NoError(t, db.First(&f, food.ID).Error)
	require.Zero(t, f.AvgRating)
	require.Zero(t, f.TotalReviews)

	// unapproved reviews stay out of the public list
	public, err := s.FoodReviews(food.ID, 10)
	require.NoError(t, err)
	require.Empty(t, public)
}

func TestSubmitReviewInactiveFood(t *testing.T) {
	s, db := newFeedbackService(t)
	retired := seedFood(t, db, "Old Special", 900, false)

	_, err := s.SubmitFoodReview(&SubmitReviewReq{
		FoodID:        retired.ID,
		CustomerName:  "Riley Park",
		CustomerEmail: "riley@example.com",
		Rating:        4,
		Review:        "miss this one",
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestModerationRefreshesRating(t *testing.T) {
	s, db := newFeedbackService(t)
	food := seedFood(t, db, "Pasta", 1600, true)

	ids := []uint{
		submitReview(t, s, food.ID, 4),
		submitReview(t, s, food.ID, 5),
		submitReview(t, s, food.ID, 3),
	}
	for _, id := range ids {
		require.NoError(t, s.ModerateReview(id, true, "looks genuine"))
	}

	var f entity.Food
	require.NoError(t, db.First(&f, food.ID).Error)
	require.InDelta(t, 4.0, f.AvgRating, 0.001)
	require.Equal(t, 3, f.TotalReviews)

	// a rejected review does not move the cached numbers
	rejected := submitReview(t, s, food.ID, 1)
	require.NoError(t, s.ModerateReview(rejected, false, "spam"))
	require.NoError(t, db.First(&f, food.ID).Error)
	require.InDelta(t, 4.0, f.AvgRating, 0.001)
	require.Equal(t, 3, f.TotalReviews)
}

func TestPendingReviewsOldestFirst(t *testing.T) {
	s, db := newFeedbackService(t)
	food := seedFood(t, db, "Pasta", 1600, true)

	first := submitReview(t, s, food.ID, 5)
	second := submitReview(t, s, food.ID, 2)

	// make the insert order unambiguous
	require.NoError(t, db.Exec(
		"UPDATE food_reviews SET created_at = datetime('now', '-1 hour') WHERE id = ?", first).Error)

	queue, err := s.PendingReviews(10)
	require.NoError(t, err)
	require.Len(t, queue, 2)
	require.Equal(t, first, queue[0].ID)
	require.Equal(t, second, queue[1].ID)
	require.Equal(t, "Pasta", queue[0].FoodName)

	// approval removes it from the queue
	require.NoError(t, s.ModerateReview(first, true, ""))
	queue, err = s.PendingReviews(10)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	require.Equal(t, second, queue[0].ID)
}

func TestFeedbackStatusAndDelete(t *testing.T) {
	s, db := newFeedbackService(t)

	res, err := s.SubmitFeedback(&SubmitFeedbackReq{
		CustomerName:  "Riley Park",
		CustomerEmail: "riley@example.com",
		Rating:        2,
		FeedbackType:  entity.FeedbackDelivery,
		Message:       "cold on arrival",
	})
	require.NoError(t, err)

	require.True(t, IsValidation(s.UpdateFeedbackStatus(res.ID, "archived")))
	require.NoError(t, s.UpdateFeedbackStatus(res.ID, entity.FeedbackResolved))

	require.NoError(t, s.DeleteFeedback(res.ID))
	require.ErrorIs(t, s.DeleteFeedback(res.ID), ErrNotFound)

	// hard delete, not a soft delete
	var count int64
	require.NoError(t, db.Unscoped().Model(&entity.CustomerFeedback{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCustomerHistory(t *testing.T) {
	s, _ := newFeedbackService(t)

	for _, rating := range []int{5, 3} {
		_, err := s.SubmitFeedback(&SubmitFeedbackReq{
			CustomerName:  "Riley Park",
			CustomerEmail: "riley@example.com",
			Rating:        rating,
			FeedbackType:  entity.FeedbackGeneral,
		})
		require.NoError(t, err)
	}

	history, err := s.CustomerHistory("riley@example.com")
	require.NoError(t, err)
	require.Len(t, history, 2)

	_, err = s.CustomerHistory("  ")
	require.True(t, IsValidation(err))
}

func TestFeedbackStatistics(t *testing.T) {
	s, db := newFeedbackService(t)
	food := seedFood(t, db, "Pasta", 1600, true)

	ratings := map[string]int{
		entity.FeedbackService:     5,
		entity.FeedbackFoodQuality: 3,
		entity.FeedbackDelivery:    1,
	}
	for typ, rating := range ratings {
		_, err := s.SubmitFeedback(&SubmitFeedbackReq{
			CustomerName:  "Riley Park",
			CustomerEmail: "riley@example.com",
			Rating:        rating,
			FeedbackType:  typ,
		})
		require.NoError(t, err)
	}
	approved := submitReview(t, s, food.ID, 4)
	require.NoError(t, s.ModerateReview(approved, true, ""))
	submitReview(t, s, food.ID, 2)

	stats, err := s.Statistics("", "")
	require.NoError(t, err)
	require.Equal(t, int64(3), stats.TotalFeedback)
	require.Equal(t, int64(1), stats.PositiveFeedback)
	require.Equal(t, int64(1), stats.NeutralFeedback)
	require.Equal(t, int64(1), stats.NegativeFeedback)
	require.Len(t, stats.ByType, 3)
	require.Equal(t, int64(2), stats.FoodReviews.TotalReviews)
	require.Equal(t, int64(1), stats.FoodReviews.ApprovedReviews)
	require.Equal(t, int64(1), stats.FoodReviews.PendingReviews)
}
