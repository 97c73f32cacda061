package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"foodchef/pkg/resp"
	"foodchef/services"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid JSON data")
		return
	}
	out, err := oc.Orders.Create(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /admin/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	o, err := oc.Orders.Get(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, o)
}

// GET /admin/orders?status=&limit=
func (oc *OrderController) ByStatus(c *gin.Context) {
	status := c.DefaultQuery("status", "pending")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	list, err := oc.Orders.ListByStatus(status, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OKCount(c, list, len(list))
}

// GET /admin/orders/today
func (oc *OrderController) Today(c *gin.Context) {
	list, err := oc.Orders.TodayOrders()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OKCount(c, list, len(list))
}

// GET /admin/orders/statistics?start=&end=
func (oc *OrderController) Statistics(c *gin.Context) {
	stats, err := oc.Orders.Statistics(c.Query("start"), c.Query("end"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, stats)
}

// PATCH /admin/orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Orders.UpdateStatus(uint(id), req.Status, req.Notes); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// PATCH /admin/orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Orders.Cancel(uint(id), req.Reason); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}

// GET /admin/orders/export — today's orders as an xlsx workbook
func (oc *OrderController) Export(c *gin.Context) {
	list, err := oc.Orders.TodayOrders()
	if err != nil {
		writeServiceError(c, err)
		return
	}

	xl := excelize.NewFile()
	defer xl.Close()
	sheet := "Orders"
	xl.SetSheetName(xl.GetSheetName(0), sheet)

	headers := []string{"ID", "Reference", "Customer", "Email", "Type", "Status", "Total", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		xl.SetCellValue(sheet, cell, h)
	}
	for rowIdx, o := range list {
		values := []any{
			o.ID, o.Reference, o.CustomerName, o.CustomerEmail,
			o.OrderType, o.Status, float64(o.TotalAmount) / 100,
			o.CreatedAt.Format(time.RFC3339),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			xl.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := xl.Write(c.Writer); err != nil {
		resp.ServerError(c, err)
	}
}
