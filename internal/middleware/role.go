package middleware

import (
	"net/http"

	"vehiclerental/internal/domain"
	"vehiclerental/internal/pkg/authz"
	"vehiclerental/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Authorize restricts a route to the given roles. With no roles it only
// requires authentication, so `Authorize()` reads as "any signed-in user".
func Authorize(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			response.AbortError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if len(roles) == 0 {
			c.Next()
			return
		}

		if !authz.CanAccess(p, 0, roles...) {
			response.AbortError(c, http.StatusForbidden, "Forbidden")
			return
		}

		c.Next()
	}
}

// AdminOnly restricts a route to administrators.
func AdminOnly() gin.HandlerFunc {
	return Authorize(domain.RoleAdmin)
}
