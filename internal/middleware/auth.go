package middleware

import (
	"net/http"
	"strings"

	"vehiclerental/internal/domain"
	"vehiclerental/internal/pkg/authz"
	jwtsvc "vehiclerental/internal/pkg/jwt"
	"vehiclerental/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// JWTAuth verifies the Bearer token and stores the principal on the context.
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.AbortError(c, http.StatusUnauthorized, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.AbortError(c, http.StatusUnauthorized, "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(principalKey, authz.Principal{
			ID:   claims.UserID,
			Role: domain.UserRole(claims.Role),
		})

		c.Next()
	}
}

// PrincipalFrom returns the authenticated principal set by JWTAuth.
func PrincipalFrom(c *gin.Context) (authz.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return authz.Principal{}, false
	}
	p, ok := v.(authz.Principal)
	return p, ok
}
