package middlewares

import (
	"strings"

	"github.com/kapilkaushal24/restaurant-management-api/pkg/authz"
	"github.com/kapilkaushal24/restaurant-management-api/pkg/resp"
	"github.com/kapilkaushal24/restaurant-management-api/services"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// Auth validates the bearer token once per request and stores the
// extracted claims in the gin context for the gate and the handlers.
func Auth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}

		claims, err := tokens.Validate(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(claimsKey, authz.Claims{UserID: claims.UserID, Role: claims.Role})
		c.Next()
	}
}

// Require enforces a role-only action via the gate. Ownership-aware
// decisions (reading a single order) happen in the order service where
// the resource is loaded.
func Require(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authz.Allow(CurrentClaims(c), action, authz.Resource{}) {
			resp.Forbidden(c, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentClaims returns the claims stashed by Auth; zero value when
// the request was not authenticated.
func CurrentClaims(c *gin.Context) authz.Claims {
	if v, ok := c.Get(claimsKey); ok {
		if cl, ok := v.(authz.Claims); ok {
			return cl
		}
	}
	return authz.Claims{}
}
