package handlers

import (
	"net/http"

	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderRole carries the acting role, set by the auth proxy in front of the service.
const HeaderRole = "X-POS-Role"

const roleContextKey = "pos.role"

var errInvalidRole = pkg.NewDomainErrorSimple("INVALID_ROLE", "Unknown role, expected staff or admin", http.StatusBadRequest)

// RoleMiddleware parses X-POS-Role into the request context. A missing header leaves the role
// empty; role-gated use cases reject it.
func RoleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderRole)
		if raw == "" {
			c.Next()
			return
		}
		role, err := entities.ParseRole(raw)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidRole.HTTPStatus, errInvalidRole.ToHTTPError())
			return
		}
		c.Set(roleContextKey, role)
		c.Next()
	}
}

func roleFrom(c *gin.Context) entities.Role {
	if v, ok := c.Get(roleContextKey); ok {
		if role, ok := v.(entities.Role); ok {
			return role
		}
	}
	return ""
}
