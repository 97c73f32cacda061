package controllers

import (
	"github.com/gin-gonic/gin"

	"foodchef/pkg/resp"
	"foodchef/services"
)

// AdminController aggregates the dashboard view from the domain services.
type AdminController struct {
	Orders       *services.OrderService
	Reservations *services.ReservationService
	Feedback     *services.FeedbackService
}

func NewAdminController(orders *services.OrderService, reservations *services.ReservationService, feedback *services.FeedbackService) *AdminController {
	return &AdminController{Orders: orders, Reservations: reservations, Feedback: feedback}
}

// GET /admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	todayOrders, err := ac.Orders.TodayOrders()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	upcoming, err := ac.Reservations.Upcoming(10)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	pending, err := ac.Feedback.PendingReviews(20)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var todayRevenue int64
	for _, o := range todayOrders {
		todayRevenue += o.TotalAmount
	}

	resp.OK(c, gin.H{
		"todayOrders":          len(todayOrders),
		"todayRevenue":         todayRevenue,
		"upcomingReservations": upcoming,
		"pendingReviews":       len(pending),
	})
}
