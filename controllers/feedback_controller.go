package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"foodchef/pkg/resp"
	"foodchef/services"
)

type FeedbackController struct {
	Feedback *services.FeedbackService
}

func NewFeedbackController(feedback *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Feedback: feedback}
}

// POST /feedback
func (fc *FeedbackController) Submit(c *gin.Context) {
	var req services.SubmitFeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid JSON data")
		return
	}
	out, err := fc.Feedback.SubmitFeedback(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// POST /reviews
func (fc *FeedbackController) SubmitReview(c *gin.Context) {
	var req services.SubmitReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid JSON data")
		return
	}
	out, err := fc.Feedback.SubmitFoodReview(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /foods/:id/reviews?limit=
func (fc *FeedbackController) FoodReviews(c *gin.Context) {
	foodID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid food id")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	list, err := fc.Feedback.FoodReviews(uint(foodID), limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OKCount(c, list, len(list))
}

// GET /admin/reviews/pending?limit=
func (fc *FeedbackController) PendingReviews(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	list, err := fc.Feedback.PendingReviews(limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OKCount(c, list, len(list))
}

// PATCH /admin/reviews/:id/moderate
func (fc *FeedbackController) Moderate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid review id")
		return
	}
	var req struct {
		Approved   *bool  `json:"approved" binding:"required"`
		AdminNotes string `json:"adminNotes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := fc.Feedback.ModerateReview(uint(id), *req.Approved, req.AdminNotes); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"moderated": true})
}

// GET /admin/feedback/statistics?start=&end=
func (fc *FeedbackController) Statistics(c *gin.Context) {
	stats, err := fc.Feedback.Statistics(c.Query("start"), c.Query("end"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /admin/feedback/history?email=
func (fc *FeedbackController) CustomerHistory(c *gin.Context) {
	list, err := fc.Feedback.CustomerHistory(c.Query("email"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OKCount(c, list, len(list))
}

// PATCH /admin/feedback/:id/status
func (fc *FeedbackController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid feedback id")
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := fc.Feedback.UpdateFeedbackStatus(uint(id), req.Status); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /admin/feedback/:id
func (fc *FeedbackController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid feedback id")
		return
	}
	if err := fc.Feedback.DeleteFeedback(uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
