package repository

import (
	"time"

	"foodchef/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// GetFoodBasics fetches the columns order creation needs to price an item.
func (r *OrderRepository) GetFoodBasics(id uint) (*entity.Food, error) {
	var f entity.Food
	err := r.DB.Select("id, name, price, is_active").First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *OrderRepository) UpdateStatus(id uint, status, notes string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "notes": notes})
	return res.RowsAffected, res.Error
}

// UpdateStatusGuard flips the status only when the current status is in
// fromStatuses. RowsAffected 0 means the guard rejected the change.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, id uint, fromStatuses []string, to, notes string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status IN ?", id, fromStatuses).
		Updates(map[string]any{"status": to, "notes": notes})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) ListByStatus(status string, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []entity.Order
	err := r.DB.Preload("OrderItems").
		Where("status = ?", status).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListCreatedBetween(start, end time.Time) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("OrderItems").
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

type OrderTotals struct {
	TotalOrders     int64   `json:"totalOrders"`
	Completed       int64   `json:"completed"`
	Cancelled       int64   `json:"cancelled"`
	TotalRevenue    int64   `json:"totalRevenue"`
	AvgOrderValue   float64 `json:"avgOrderValue"`
	UniqueCustomers int64   `json:"uniqueCustomers"`
}

func (r *OrderRepository) Totals(start, end time.Time) (*OrderTotals, error) {
	var t OrderTotals
	err := r.DB.Model(&entity.Order{}).
		Select(`COUNT(*) AS total_orders,
			COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed,
			COUNT(CASE WHEN status = 'cancelled' THEN 1 END) AS cancelled,
			COALESCE(SUM(total_amount), 0) AS total_revenue,
			COALESCE(AVG(total_amount), 0) AS avg_order_value,
			COUNT(DISTINCT customer_email) AS unique_customers`).
		Where("created_at BETWEEN ? AND ?", start, end).
		Scan(&t).Error
	return &t, err
}

type PopularItem struct {
	FoodID       uint   `json:"foodId"`
	FoodName     string `json:"foodName"`
	TotalOrdered int64  `json:"totalOrdered"`
}

// PopularItems ranks items by quantity sold, excluding cancelled orders.
func (r *OrderRepository) PopularItems(start, end time.Time, limit int) ([]PopularItem, error) {
	var out []PopularItem
	err := r.DB.Table("order_items AS oi").
		Select("oi.food_id, oi.food_name, SUM(oi.quantity) AS total_ordered").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.created_at BETWEEN ? AND ? AND o.status <> ?", start, end, entity.OrderCancelled).
		Group("oi.food_id, oi.food_name").
		Order("total_ordered DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}
