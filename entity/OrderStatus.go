package entity

import "strings"

// OrderStatus is the finite state of an order's lifecycle.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusConfirmed OrderStatus = "Confirmed"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

// transitions is the full state graph. Completed and Cancelled have no
// outgoing edges.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ParseOrderStatus maps an incoming status name (case-insensitive) onto
// the enumeration.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, true
	case "confirmed":
		return StatusConfirmed, true
	case "preparing":
		return StatusPreparing, true
	case "ready":
		return StatusReady, true
	case "completed":
		return StatusCompleted, true
	case "cancelled":
		return StatusCancelled, true
	default:
		return "", false
	}
}

// CanTransition reports whether from -> to is an edge of the graph.
func (from OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions.
func (s OrderStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

func (s OrderStatus) String() string { return string(s) }
