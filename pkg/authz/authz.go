// Package authz is the per-request access decision: a pure function of
// the caller's token claims, the attempted action and (for ownership
// checks) the resolved resource. It holds no state and never touches
// the store, so the role matrix is testable in isolation.
package authz

import (
	"github.com/kapilkaushal24/restaurant-management-api/entity"
)

// Claims are the identity facts extracted from a validated token.
type Claims struct {
	UserID uint
	Role   entity.Role
}

type Action int

const (
	// create/update/delete a menu category or item
	ActionCatalogWrite Action = iota
	// create/update/delete a restaurant
	ActionRestaurantWrite
	ActionListUsers
	ActionListAllOrders
	ActionCreateOrder
	ActionReadOrder
	ActionUpdateOrderStatus
)

// Resource carries the ownership facts a decision may depend on. Only
// ActionReadOrder looks at it.
type Resource struct {
	OwnerID uint
}

// Allow decides whether the caller may perform action on the resource.
func Allow(c Claims, action Action, res Resource) bool {
	switch action {
	case ActionCatalogWrite:
		return c.Role == entity.RoleAdmin || c.Role == entity.RoleStaff
	case ActionRestaurantWrite:
		return c.Role == entity.RoleAdmin
	case ActionListUsers:
		return c.Role == entity.RoleSuperAdmin
	case ActionListAllOrders:
		return c.Role == entity.RoleAdmin
	case ActionCreateOrder:
		return c.Role == entity.RoleCustomer
	case ActionReadOrder:
		if c.Role == entity.RoleAdmin || c.Role == entity.RoleStaff {
			return true
		}
		return res.OwnerID != 0 && res.OwnerID == c.UserID
	case ActionUpdateOrderStatus:
		return c.Role == entity.RoleAdmin || c.Role == entity.RoleStaff
	default:
		return false
	}
}
