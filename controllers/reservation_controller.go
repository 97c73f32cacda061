package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"foodchef/pkg/resp"
	"foodchef/services"
)

type ReservationController struct {
	Res *services.ReservationService
}

func NewReservationController(res *services.ReservationService) *ReservationController {
	return &ReservationController{Res: res}
}

// POST /api/reservations
func (rc *ReservationController) Create(c *gin.Context) {
	var req services.CreateReservationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid JSON data")
		return
	}
	out, err := rc.Res.Create(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /api/reservations — latest 50
func (rc *ReservationController) Latest(c *gin.Context) {
	list, err := rc.Res.Latest(50)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OKCount(c, list, len(list))
}

// GET /api/reservations/availability?date=&time=&guests=
func (rc *ReservationController) CheckAvailability(c *gin.Context) {
	date := c.Query("date")
	timeOfDay := c.Query("time")
	if date == "" || timeOfDay == "" {
		resp.BadRequest(c, "date and time are required")
		return
	}
	guests, _ := strconv.Atoi(c.DefaultQuery("guests", "1"))

	av, err := rc.Res.CheckAvailability(date, timeOfDay, guests)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, av)
}

// GET /admin/reservations?date=
func (rc *ReservationController) ByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		resp.BadRequest(c, "date is required")
		return
	}
	list, err := rc.Res.ListByDate(date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OKCount(c, list, len(list))
}

// GET /admin/reservations/upcoming?limit=
func (rc *ReservationController) Upcoming(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	list, err := rc.Res.Upcoming(limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OKCount(c, list, len(list))
}

// GET /admin/reservations/statistics?start=&end=
func (rc *ReservationController) Statistics(c *gin.Context) {
	stats, err := rc.Res.Statistics(c.Query("start"), c.Query("end"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, stats)
}

// PATCH /admin/reservations/:id/status
func (rc *ReservationController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid reservation id")
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := rc.Res.UpdateStatus(uint(id), req.Status); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// PATCH /admin/reservations/:id/cancel
func (rc *ReservationController) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid reservation id")
		return
	}
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := rc.Res.Cancel(uint(id), req.Reason); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}

// POST /admin/reservations/reminders?daysAhead=
func (rc *ReservationController) SendReminders(c *gin.Context) {
	daysAhead, _ := strconv.Atoi(c.DefaultQuery("daysAhead", "1"))
	report, err := rc.Res.SendReminders(daysAhead)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, report)
}
