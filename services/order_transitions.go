package services

import (
	"context"

	"github.com/kapilkaushal24/restaurant-management-api/entity"
)

// UpdateStatus moves an order along the lifecycle graph. The write is
// a guarded compare-and-set on the previous status, so two concurrent
// transitions cannot both win.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, statusName string) (*OrderView, error) {
	to, ok := entity.ParseOrderStatus(statusName)
	if !ok {
		return nil, ErrInvalidStatus
	}

	o, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, storeErr(err, ErrOrderNotFound)
	}

	if !o.Status.CanTransition(to) {
		return nil, ErrInvalidTransition
	}

	moved, err := s.Repo.UpdateStatusFromTo(ctx, o.ID, o.Status, to)
	if err != nil {
		return nil, storeErr(err, ErrOrderNotFound)
	}
	if !moved {
		// lost the race: someone else transitioned first
		return nil, ErrInvalidTransition
	}

	o.Status = to
	return s.view(ctx, o)
}
