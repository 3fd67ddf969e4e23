package services

import (
	"context"
	"testing"

	"github.com/kapilkaushal24/restaurant-management-api/entity"
	"github.com/kapilkaushal24/restaurant-management-api/pkg/authz"
	"github.com/kapilkaushal24/restaurant-management-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestOrderService(t *testing.T, db *gorm.DB) *OrderService {
	t.Helper()
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewRestaurantRepository(db))
}

func customer(id uint) authz.Claims {
	return authz.Claims{UserID: id, Role: entity.RoleCustomer}
}

func TestCreateOrder_TotalsAndSnapshots(t *testing.T) {
	db := newTestDB(t)
	restID, _, itemA, itemB := seedCatalog(t, db)
	svc := newTestOrderService(t, db)
	ctx := context.Background()

	order, err := svc.Create(ctx, 1, &CreateOrderInput{
		RestaurantID: restID,
		Items: []OrderItemIn{
			{MenuItemID: itemA, Quantity: 2}, // 950 each
			{MenuItemID: itemB, Quantity: 1}, // 1225
		},
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, order.UserID)
	assert.Equal(t, entity.StatusPending.String(), order.Status)
	assert.EqualValues(t, 2*950+1225, order.TotalAmount)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Pad Thai", order.Items[0].Name)
	assert.EqualValues(t, 950, order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "Green Curry", order.Items[1].Name)

	// a later menu price change must not touch the order
	require.NoError(t, db.Model(&entity.MenuItem{}).
		Where("id = ?", itemA).Update("price", 9999).Error)

	reread, err := svc.Get(ctx, customer(1), order.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2*950+1225, reread.TotalAmount)
	assert.EqualValues(t, 950, reread.Items[0].Price)
}

// register("a@x.com", Customer) + one line of item priced 9.50 x2
// must total exactly 19.00.
func TestCreateOrder_WorkedExample(t *testing.T) {
	db := newTestDB(t)
	restID, _, itemA, _ := seedCatalog(t, db) // itemA = 950 minor units
	authSvc := newTestAuthService(t, db)
	svc := newTestOrderService(t, db)
	ctx := context.Background()

	session, err := authSvc.Register(ctx, RegisterInput{
		Name: "A", Email: "a@x.com", Password: "secret1", Role: "Customer",
	})
	require.NoError(t, err)

	order, err := svc.Create(ctx, session.UserID, &CreateOrderInput{
		RestaurantID: restID,
		Items:        []OrderItemIn{{MenuItemID: itemA, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1900, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.EqualValues(t, 950, order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestCreateOrder_UnknownItemIsAtomic(t *testing.T) {
	db := newTestDB(t)
	restID, _, itemA, _ := seedCatalog(t, db)
	svc := newTestOrderService(t, db)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, &CreateOrderInput{
		RestaurantID: restID,
		Items: []OrderItemIn{
			{MenuItemID: itemA, Quantity: 1},
			{MenuItemID: 99999, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, ErrItemNotFound)
	assert.Contains(t, err.Error(), "99999")

	// nothing persisted, not even the valid first line
	var orders, items int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestCreateOrder_UnknownRestaurant(t *testing.T) {
	db := newTestDB(t)
	_, _, itemA, _ := seedCatalog(t, db)
	svc := newTestOrderService(t, db)

	_, err := svc.Create(context.Background(), 1, &CreateOrderInput{
		RestaurantID: 999,
		Items:        []OrderItemIn{{MenuItemID: itemA, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestCreateOrder_NonPositiveQuantity(t *testing.T) {
	db := newTestDB(t)
	restID, _, itemA, _ := seedCatalog(t, db)
	svc := newTestOrderService(t, db)

	for _, qty := range []int{0, -2} {
		_, err := svc.Create(context.Background(), 1, &CreateOrderInput{
			RestaurantID: restID,
			Items:        []OrderItemIn{{MenuItemID: itemA, Quantity: qty}},
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.NotErrorIs(t, err, ErrItemNotFound)
	}
}

func TestGetOrder_OwnershipMatrix(t *testing.T) {
	db := newTestDB(t)
	restID, _, itemA, _ := seedCatalog(t, db)
	svc := newTestOrderService(t, db)
	ctx := context.Background()

	order, err := svc.Create(ctx, 7, &CreateOrderInput{
		RestaurantID: restID,
		Items:        []OrderItemIn{{MenuItemID: itemA, Quantity: 1}},
	})
	require.NoError(t, err)

	// the owner reads their own order
	_, err = svc.Get(ctx, customer(7), order.ID)
	assert.NoError(t, err)

	// a foreign customer is denied, not told "not found"
	_, err = svc.Get(ctx, customer(8), order.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// staff and admin read any order
	_, err = svc.Get(ctx, authz.Claims{UserID: 9, Role: entity.RoleStaff}, order.ID)
	assert.NoError(t, err)
	_, err = svc.Get(ctx, authz.Claims{UserID: 10, Role: entity.RoleAdmin}, order.ID)
	assert.NoError(t, err)

	// an unknown id is a different outcome from a denied one
	_, err = svc.Get(ctx, customer(7), 424242)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	restID, _, itemA, _ := seedCatalog(t, db)
	svc := newTestOrderService(t, db)
	ctx := context.Background()

	newOrder := func() *OrderView {
		o, err := svc.Create(ctx, 1, &CreateOrderInput{
			RestaurantID: restID,
			Items:        []OrderItemIn{{MenuItemID: itemA, Quantity: 1}},
		})
		require.NoError(t, err)
		return o
	}

	t.Run("full_lifecycle", func(t *testing.T) {
		o := newOrder()
		for _, step := range []string{"Confirmed", "Preparing", "Ready", "Completed"} {
			updated, err := svc.UpdateStatus(ctx, o.ID, step)
			require.NoError(t, err, step)
			assert.Equal(t, step, updated.Status)
		}
	})

	t.Run("pending_to_cancelled", func(t *testing.T) {
		o := newOrder()
		updated, err := svc.UpdateStatus(ctx, o.ID, "cancelled")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled.String(), updated.Status)
	})

	t.Run("terminal_state_is_final", func(t *testing.T) {
		o := newOrder()
		_, err := svc.UpdateStatus(ctx, o.ID, "Cancelled")
		require.NoError(t, err)
		_, err = svc.UpdateStatus(ctx, o.ID, "Pending")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("completed_to_pending_rejected", func(t *testing.T) {
		o := newOrder()
		for _, step := range []string{"Confirmed", "Preparing", "Ready", "Completed"} {
			_, err := svc.UpdateStatus(ctx, o.ID, step)
			require.NoError(t, err)
		}
		_, err := svc.UpdateStatus(ctx, o.ID, "Pending")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("no_skipping_states", func(t *testing.T) {
		o := newOrder()
		_, err := svc.UpdateStatus(ctx, o.ID, "Ready")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown_status_name", func(t *testing.T) {
		o := newOrder()
		_, err := svc.UpdateStatus(ctx, o.ID, "Delivered")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown_order", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, 424242, "Confirmed")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestListOrders(t *testing.T) {
	db := newTestDB(t)
	restID, _, itemA, _ := seedCatalog(t, db)
	svc := newTestOrderService(t, db)
	ctx := context.Background()

	for _, userID := range []uint{1, 1, 2} {
		_, err := svc.Create(ctx, userID, &CreateOrderInput{
			RestaurantID: restID,
			Items:        []OrderItemIn{{MenuItemID: itemA, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := svc.ListForUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, o := range mine {
		assert.EqualValues(t, 1, o.UserID)
	}
}
