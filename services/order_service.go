package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"foodchef/entity"
	"foodchef/pkg/notify"
	"foodchef/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	Log      *logrus.Logger
	Notifier notify.Notifier
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, log *logrus.Logger, notifier notify.Notifier) *OrderService {
	return &OrderService{DB: db, Repo: repo, Log: log, Notifier: notifier}
}

// ----- DTOs -----

type OrderItemIn struct {
	FoodID   uint `json:"foodId"`
	Quantity int  `json:"quantity"`
	// accepted on the wire but never trusted; pricing always comes
	// from the current food row
	UnitPrice int64 `json:"unitPrice,omitempty"`
}

type CreateOrderReq struct {
	CustomerName        string        `json:"customerName"`
	CustomerEmail       string        `json:"customerEmail"`
	CustomerPhone       string        `json:"customerPhone"`
	OrderType           string        `json:"orderType"`
	DeliveryAddress     string        `json:"deliveryAddress"`
	SpecialInstructions string        `json:"specialInstructions"`
	Items               []OrderItemIn `json:"items"`
}

type CreateOrderRes struct {
	ID          uint   `json:"orderId"`
	Reference   string `json:"reference"`
	TotalAmount int64  `json:"totalAmount"`
}

type OrderStats struct {
	repository.OrderTotals
	PopularItems []repository.PopularItem `json:"popularItems"`
}

var validOrderStatuses = map[string]bool{
	entity.OrderPending:   true,
	entity.OrderConfirmed: true,
	entity.OrderPreparing: true,
	entity.OrderReady:     true,
	entity.OrderDelivered: true,
	entity.OrderCancelled: true,
	entity.OrderCompleted: true,
}

var validOrderTypes = map[string]bool{
	entity.OrderTypeDineIn:   true,
	entity.OrderTypeTakeaway: true,
	entity.OrderTypeDelivery: true,
}

// cancellable source statuses for orders; reservations have no such guard
var orderCancellableFrom = []string{entity.OrderPending, entity.OrderConfirmed}

// ----- Create -----

// Create prices every item from the current food row, then persists the
// order and all items in one transaction. Any failure rolls the whole
// order back.
func (s *OrderService) Create(req *CreateOrderReq) (*CreateOrderRes, error) {
	switch {
	case strings.TrimSpace(req.CustomerName) == "":
		return nil, missingField("customer_name")
	case strings.TrimSpace(req.CustomerEmail) == "":
		return nil, missingField("customer_email")
	case strings.TrimSpace(req.CustomerPhone) == "":
		return nil, missingField("customer_phone")
	case len(req.Items) == 0:
		return nil, missingField("items")
	}

	orderType := req.OrderType
	if orderType == "" {
		orderType = entity.OrderTypeDineIn
	}
	if !validOrderTypes[orderType] {
		return nil, invalidField("order_type", "unknown order type "+orderType)
	}
	if orderType == entity.OrderTypeDelivery && strings.TrimSpace(req.DeliveryAddress) == "" {
		return nil, missingField("delivery_address")
	}

	for _, it := range req.Items {
		if it.FoodID == 0 || it.Quantity < 1 {
			return nil, invalidField("items", "every item needs a food id and a positive quantity")
		}
	}

	var total int64
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		food, err := s.Repo.GetFoodBasics(it.FoodID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: food item %d not available", ErrNotFound, it.FoodID)
			}
			return nil, s.dbFail("create order", err)
		}
		if !food.IsActive {
			return nil, fmt.Errorf("%w: food item %d not available", ErrNotFound, it.FoodID)
		}

		lineTotal := food.Price * int64(it.Quantity)
		total += lineTotal
		items = append(items, entity.OrderItem{
			FoodID:     food.ID,
			FoodName:   food.Name,
			Quantity:   it.Quantity,
			UnitPrice:  food.Price,
			TotalPrice: lineTotal,
		})
	}

	order := entity.Order{
		Reference:           uuid.NewString(),
		CustomerName:        strings.TrimSpace(req.CustomerName),
		CustomerEmail:       strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:       strings.TrimSpace(req.CustomerPhone),
		TotalAmount:         total,
		OrderType:           orderType,
		DeliveryAddress:     strings.TrimSpace(req.DeliveryAddress),
		SpecialInstructions: req.SpecialInstructions,
		Status:              entity.OrderPending,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.dbFail("create order", err)
	}

	s.Log.WithFields(logrus.Fields{
		"order_id":      order.ID,
		"customer_name": order.CustomerName,
		"total_amount":  total,
		"items_count":   len(items),
	}).Info("order created")

	if err := s.Notifier.Send(order.CustomerEmail, fmt.Sprintf("Order Confirmation #%d - Food Chef Cafe", order.ID), orderConfirmationBody(&order, items)); err != nil {
		s.Log.WithFields(logrus.Fields{"order_id": order.ID, "error": err.Error()}).
			Warning("order confirmation delivery failed")
	}

	return &CreateOrderRes{ID: order.ID, Reference: order.Reference, TotalAmount: total}, nil
}

// ----- Reads -----

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, s.dbFail("get order", err)
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, s.dbFail("get order", err)
	}
	o.OrderItems = items
	return o, nil
}

func (s *OrderService) ListByStatus(status string, limit int) ([]entity.Order, error) {
	if !validOrderStatuses[status] {
		return nil, invalidField("status", "unknown status "+status)
	}
	out, err := s.Repo.ListByStatus(status, limit)
	if err != nil {
		return nil, s.dbFail("list orders by status", err)
	}
	return out, nil
}

func (s *OrderService) TodayOrders() ([]entity.Order, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	out, err := s.Repo.ListCreatedBetween(start, start.AddDate(0, 0, 1))
	if err != nil {
		return nil, s.dbFail("list today orders", err)
	}
	return out, nil
}

func (s *OrderService) Statistics(startDate, endDate string) (*OrderStats, error) {
	start, end, err := statsRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	totals, err := s.Repo.Totals(start, end)
	if err != nil {
		return nil, s.dbFail("order statistics", err)
	}
	popular, err := s.Repo.PopularItems(start, end, 10)
	if err != nil {
		return nil, s.dbFail("order statistics", err)
	}
	return &OrderStats{OrderTotals: *totals, PopularItems: popular}, nil
}

// ----- Transitions -----

func (s *OrderService) UpdateStatus(id uint, status, notes string) error {
	if !validOrderStatuses[status] {
		return invalidField("status", "unknown status "+status)
	}
	affected, err := s.Repo.UpdateStatus(id, status, notes)
	if err != nil {
		return s.dbFail("update order status", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	s.Log.WithFields(logrus.Fields{
		"order_id":   id,
		"new_status": status,
		"notes":      notes,
	}).Info("order status updated")
	return nil
}

// Cancel only succeeds from pending or confirmed; the guard is a
// conditional UPDATE so a concurrent transition cannot slip through.
func (s *OrderService) Cancel(id uint, reason string) error {
	o, err := s.Repo.GetOrder(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return s.dbFail("cancel order", err)
	}

	notes := strings.TrimSpace(o.Notes + " Cancelled: " + reason)
	affected, err := s.Repo.UpdateStatusGuard(s.DB, id, orderCancellableFrom, entity.OrderCancelled, notes)
	if err != nil {
		return s.dbFail("cancel order", err)
	}
	if affected == 0 {
		return ErrInvalidTransition
	}

	s.Log.WithFields(logrus.Fields{
		"order_id": id,
		"reason":   reason,
	}).Info("order cancelled")
	return nil
}

func (s *OrderService) dbFail(op string, err error) error {
	s.Log.WithFields(logrus.Fields{"op": op, "error": err.Error()}).Error("database error")
	return ErrDatabase
}

// statsRange turns two YYYY-MM-DD strings into an inclusive timestamp
// range, defaulting to the current month.
func statsRange(startDate, endDate string) (time.Time, time.Time, error) {
	now := time.Now()
	if startDate == "" || endDate == "" {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond), nil
	}
	start, err := time.ParseInLocation("2006-01-02", startDate, now.Location())
	if err != nil {
		return time.Time{}, time.Time{}, invalidField("start_date", "must be YYYY-MM-DD")
	}
	end, err := time.ParseInLocation("2006-01-02", endDate, now.Location())
	if err != nil {
		return time.Time{}, time.Time{}, invalidField("end_date", "must be YYYY-MM-DD")
	}
	return start, end.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}
