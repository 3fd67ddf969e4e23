package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kapilkaushal24/restaurant-management-api/entity"
	"github.com/kapilkaushal24/restaurant-management-api/pkg/authz"
	"github.com/kapilkaushal24/restaurant-management-api/repository"

	"gorm.io/gorm"
)

// OrderService owns order creation (price snapshots, derived totals)
// and the status lifecycle. Orders and their items are immutable after
// creation except for the status field.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	RestRepo *repository.RestaurantRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, restRepo *repository.RestaurantRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, RestRepo: restRepo}
}

// ----- DTOs -----

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderInput struct {
	RestaurantID uint          `json:"restaurantId" binding:"required"`
	Items        []OrderItemIn `json:"items" binding:"required,min=1,dive"`
}

type OrderItemView struct {
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`
}

type OrderView struct {
	ID           uint            `json:"id"`
	UserID       uint            `json:"userId"`
	RestaurantID uint            `json:"restaurantId"`
	TotalAmount  int64           `json:"totalAmount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	Items        []OrderItemView `json:"items"`
}

// ----- Create -----

// Create prices the cart against the live catalog, snapshots each line
// and commits order + items as one transaction. A line referencing a
// missing item fails the whole call and persists nothing.
func (s *OrderService) Create(ctx context.Context, userID uint, req *CreateOrderInput) (*OrderView, error) {
	ok, err := s.RestRepo.Exists(ctx, req.RestaurantID)
	if err != nil {
		return nil, storeErr(err, err)
	}
	if !ok {
		return nil, ErrRestaurantNotFound
	}

	type line struct {
		menuItemID uint
		name       string
		qty        int
		unitPrice  int64
	}

	var total int64
	lines := make([]line, 0, len(req.Items))
	for _, it := range req.Items {
		// binding enforces min=1 at the edge; this guards direct callers
		if it.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		m, err := s.Repo.GetMenuItemBasics(ctx, it.MenuItemID)
		if err != nil {
			return nil, storeErr(err, fmt.Errorf("%w: id %d", ErrItemNotFound, it.MenuItemID))
		}
		total += m.Price * int64(it.Quantity)
		lines = append(lines, line{menuItemID: m.ID, name: m.Name, qty: it.Quantity, unitPrice: m.Price})
	}

	order := entity.Order{
		UserID:       userID,
		RestaurantID: req.RestaurantID,
		TotalAmount:  total,
		Status:       entity.StatusPending,
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.menuItemID,
				Name:       l.name,
				Quantity:   l.qty,
				Price:      l.unitPrice,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, storeErr(err, err)
	}

	return s.view(ctx, &order)
}

// ----- Reads -----

// Get is the ownership-aware read: Admin/Staff see any order, a
// customer only their own. A foreign order is denied, not hidden — the
// caller learns the id exists but is off limits, which is a different
// outcome from an unknown id.
func (s *OrderService) Get(ctx context.Context, claims authz.Claims, orderID uint) (*OrderView, error) {
	o, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, storeErr(err, ErrOrderNotFound)
	}
	if !authz.Allow(claims, authz.ActionReadOrder, authz.Resource{OwnerID: o.UserID}) {
		return nil, ErrAccessDenied
	}
	return s.view(ctx, o)
}

func (s *OrderService) ListAll(ctx context.Context) ([]OrderView, error) {
	orders, err := s.Repo.ListOrders(ctx)
	if err != nil {
		return nil, storeErr(err, err)
	}
	return s.views(ctx, orders)
}

func (s *OrderService) ListForUser(ctx context.Context, userID uint) ([]OrderView, error) {
	orders, err := s.Repo.ListOrdersForUser(ctx, userID)
	if err != nil {
		return nil, storeErr(err, err)
	}
	return s.views(ctx, orders)
}

// view rebuilds the order response from the snapshot lines, in cart
// order, never from the live menu.
func (s *OrderService) view(ctx context.Context, o *entity.Order) (*OrderView, error) {
	items, err := s.Repo.GetOrderItems(ctx, o.ID)
	if err != nil {
		return nil, storeErr(err, err)
	}
	views := make([]OrderItemView, 0, len(items))
	for _, it := range items {
		views = append(views, OrderItemView{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			Price:      it.Price,
		})
	}
	return &OrderView{
		ID:           o.ID,
		UserID:       o.UserID,
		RestaurantID: o.RestaurantID,
		TotalAmount:  o.TotalAmount,
		Status:       o.Status.String(),
		CreatedAt:    o.CreatedAt,
		Items:        views,
	}, nil
}

func (s *OrderService) views(ctx context.Context, orders []entity.Order) ([]OrderView, error) {
	out := make([]OrderView, 0, len(orders))
	for i := range orders {
		v, err := s.view(ctx, &orders[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}
