package repository

import (
	"context"

	"github.com/kapilkaushal24/restaurant-management-api/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder and CreateOrderItem take the caller's transaction handle
// so an order and all its lines commit (or roll back) as one unit.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(ctx context.Context, orderID uint) (*entity.Order, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var o entity.Order
	if err := r.DB.WithContext(ctx).First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderItems returns lines in insertion order, i.e. cart order.
func (r *OrderRepository) GetOrderItems(ctx context.Context, orderID uint) ([]entity.OrderItem, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var items []entity.OrderItem
	err := r.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id").Find(&items).Error
	return items, err
}

func (r *OrderRepository) ListOrders(ctx context.Context) ([]entity.Order, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var out []entity.Order
	err := r.DB.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListOrdersForUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var out []entity.Order
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").Find(&out).Error
	return out, err
}

// UpdateStatusFromTo is a guarded compare-and-set: the row moves only
// if it is still in the expected status, so a concurrent transition
// loses cleanly instead of overwriting.
func (r *OrderRepository) UpdateStatusFromTo(ctx context.Context, orderID uint, from, to entity.OrderStatus) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// GetMenuItemBasics resolves the live price for a cart line.
func (r *OrderRepository) GetMenuItemBasics(ctx context.Context, id uint) (*entity.MenuItem, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var m entity.MenuItem
	if err := r.DB.WithContext(ctx).Select("id, name, price, category_id").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
