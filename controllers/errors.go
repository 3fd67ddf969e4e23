package controllers

import (
	"errors"

	"github.com/kapilkaushal24/restaurant-management-api/pkg/resp"
	"github.com/kapilkaushal24/restaurant-management-api/services"

	"github.com/gin-gonic/gin"
)

// respondErr maps service failure kinds onto transport statuses in one
// place. Messages stay generic: a credential failure never says which
// half was wrong, and a denied order read is a 403, not a 404.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrAccessDenied):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrRestaurantNotFound),
		errors.Is(err, services.ErrCategoryNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrItemNotFound):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrStoreUnavailable):
		resp.Unavailable(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
