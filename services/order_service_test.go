package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodchef/entity"
	"foodchef/pkg/notify"
	"foodchef/repository"
)

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	return NewOrderService(db, repository.NewOrderRepository(db), testLogger(), notify.Noop{}), db
}

func TestCreateOrderPricesFromMenu(t *testing.T) {
	s, db := newOrderService(t)
	burger := seedFood(t, db, "Burger", 1250, true)
	fries := seedFood(t, db, "Fries", 450, true)

	res, err := s.Create(&CreateOrderReq{
		CustomerName:  "Avery Chen",
		CustomerEmail: "avery@example.com",
		CustomerPhone: "555-0102",
		OrderType:     entity.OrderTypeTakeaway,
		Items: []OrderItemIn{
			// client-supplied prices are ignored
			{FoodID: burger.ID, Quantity: 2, UnitPrice: 1},
			{FoodID: fries.ID, Quantity: 1, UnitPrice: 1},
		},
	})
	require.NoError(t, err)
	require.Equal(t, int64(2*1250+450), res.TotalAmount)
	require.NotEmpty(t, res.Reference)

	got, err := s.Get(res.ID)
	require.NoError(t, err)
	require.Equal(t, entity.OrderPending, got.Status)
	require.Len(t, got.OrderItems, 2)
	require.Equal(t, "Burger", got.OrderItems[0].FoodName)
	require.Equal(t, int64(1250), got.OrderItems[0].UnitPrice)
	require.Equal(t, int64(2500), got.OrderItems[0].TotalPrice)
}

func TestCreateOrderRejectsInactiveFood(t *testing.T) {
	s, db := newOrderService(t)
	burger := seedFood(t, db, "Burger", 1250, true)
	retired := seedFood(t, db, "Old Special", 900, false)

	_, err := s.Create(&CreateOrderReq{
		CustomerName:  "Avery Chen",
		CustomerEmail: "avery@example.com",
		CustomerPhone: "555-0102",
		Items: []OrderItemIn{
			{FoodID: burger.ID, Quantity: 1},
			{FoodID: retired.ID, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, ErrNotFound)

	// nothing persisted from the failed order
	var orders, items int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&items).Error)
	require.Zero(t, orders)
	require.Zero(t, items)
}

func TestCreateOrderValidation(t *testing.T) {
	s, db := newOrderService(t)
	burger := seedFood(t, db, "Burger", 1250, true)

	base := func() *CreateOrderReq {
		return &CreateOrderReq{
			CustomerName:  "Avery Chen",
			CustomerEmail: "avery@example.com",
			CustomerPhone: "555-0102",
			Items:         []OrderItemIn{{FoodID: burger.ID, Quantity: 1}},
		}
	}

	tests := []struct {
		name   string
		mutate func(*CreateOrderReq)
	}{
		{"missing name", func(r *CreateOrderReq) { r.CustomerName = "" }},
		{"missing email", func(r *CreateOrderReq) { r.CustomerEmail = "" }},
		{"missing phone", func(r *CreateOrderReq) { r.CustomerPhone = "" }},
		{"no items", func(r *CreateOrderReq) { r.Items = nil }},
		{"zero quantity", func(r *CreateOrderReq) { r.Items[0].Quantity = 0 }},
		{"unknown type", func(r *CreateOrderReq) { r.OrderType = "drive_thru" }},
		{"delivery without address", func(r *CreateOrderReq) { r.OrderType = entity.OrderTypeDelivery }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(req)
			_, err := s.Create(req)
			require.True(t, IsValidation(err), "want validation error, got %v", err)
		})
	}
}

func TestOrderTypeDefaultsToDineIn(t *testing.T) {
	s, db := newOrderService(t)
	burger := seedFood(t, db, "Burger", 1250, true)

	res, err := s.Create(&CreateOrderReq{
		CustomerName:  "Avery Chen",
		CustomerEmail: "avery@example.com",
		CustomerPhone: "555-0102",
		Items:         []OrderItemIn{{FoodID: burger.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	got, err := s.Get(res.ID)
	require.NoError(t, err)
	require.Equal(t, entity.OrderTypeDineIn, got.OrderType)
}

func TestCancelOrderOnlyFromEarlyStatuses(t *testing.T) {
	s, db := newOrderService(t)
	burger := seedFood(t, db, "Burger", 1250, true)

	create := func() uint {
		res, err := s.Create(&CreateOrderReq{
			CustomerName:  "Avery Chen",
			CustomerEmail: "avery@example.com",
			CustomerPhone: "555-0102",
			Items:         []OrderItemIn{{FoodID: burger.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		return res.ID
	}

	// pending cancels fine and records the reason
	id := create()
	require.NoError(t, s.Cancel(id, "customer request"))
	got, err := s.Get(id)
	require.NoError(t, err)
	require.Equal(t, entity.OrderCancelled, got.Status)
	require.Contains(t, got.Notes, "Cancelled: customer request")

	// delivered does not
	id = create()
	require.NoError(t, s.UpdateStatus(id, entity.OrderDelivered, ""))
	require.ErrorIs(t, s.Cancel(id, "too late"), ErrInvalidTransition)
	got, err = s.Get(id)
	require.NoError(t, err)
	require.Equal(t, entity.OrderDelivered, got.Status)
}

func TestUpdateOrderStatus(t *testing.T) {
	s, db := newOrderService(t)
	burger := seedFood(t, db, "Burger", 1250, true)

	res, err := s.Create(&CreateOrderReq{
		CustomerName:  "Avery Chen",
		CustomerEmail: "avery@example.com",
		CustomerPhone: "555-0102",
		Items:         []OrderItemIn{{FoodID: burger.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, s.UpdateStatus(res.ID, entity.OrderPreparing, "on the grill"))
	got, err := s.Get(res.ID)
	require.NoError(t, err)
	require.Equal(t, entity.OrderPreparing, got.Status)
	require.Equal(t, "on the grill", got.Notes)

	require.True(t, IsValidation(s.UpdateStatus(res.ID, "shipped", "")))
	require.ErrorIs(t, s.UpdateStatus(9999, entity.OrderReady, ""), ErrNotFound)
}

func TestOrderStatistics(t *testing.T) {
	s, db := newOrderService(t)
	burger := seedFood(t, db, "Burger", 1250, true)
	fries := seedFood(t, db, "Fries", 450, true)

	for i := 0; i < 2; i++ {
		_, err := s.Create(&CreateOrderReq{
			CustomerName:  "Avery Chen",
			CustomerEmail: "avery@example.com",
			CustomerPhone: "555-0102",
			Items: []OrderItemIn{
				{FoodID: burger.ID, Quantity: 2},
				{FoodID: fries.ID, Quantity: 1},
			},
		})
		require.NoError(t, err)
	}

	stats, err := s.Statistics("", "")
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.TotalOrders)
	require.Equal(t, int64(2*(2*1250+450)), stats.TotalRevenue)
	require.NotEmpty(t, stats.PopularItems)
	require.Equal(t, "Burger", stats.PopularItems[0].FoodName)
	require.Equal(t, int64(4), stats.PopularItems[0].TotalOrdered)
}
