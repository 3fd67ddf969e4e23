package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Failure kinds shared across the auth, order and catalog services.
// The HTTP edge maps each one to a transport status; services only
// ever return these (wrapped for extra context) so callers can match
// with errors.Is.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrItemNotFound       = errors.New("menu item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrAccessDenied       = errors.New("access denied")
	ErrStoreUnavailable   = errors.New("store unavailable")
)

// storeErr maps raw repository errors onto failure kinds: a missing
// row becomes notFound, a blown deadline becomes ErrStoreUnavailable,
// anything else passes through.
func storeErr(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, context.DeadlineExceeded):
		return ErrStoreUnavailable
	default:
		return err
	}
}
