package middleware

import (
	"strings"

	"aura-crm/internal/authz"
	apperrors "aura-crm/internal/errors"
	"aura-crm/internal/models"
	"aura-crm/internal/respond"
	"aura-crm/pkg/auth"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
	ctxEmail  = "email"
)

// AuthMiddleware validates the bearer token and stores the caller's identity
// in the request context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respond.Error(c, apperrors.Unauthorized("authorization header required"))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respond.Error(c, apperrors.Unauthorized("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := auth.ValidateJWT(parts[1], secret)
		if err != nil {
			respond.Error(c, apperrors.Unauthorized("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Set(ctxEmail, claims.Email)
		c.Next()
	}
}

// IdentityFromContext returns the authenticated caller set by AuthMiddleware.
func IdentityFromContext(c *gin.Context) (authz.Identity, bool) {
	userID, ok := c.Get(ctxUserID)
	if !ok {
		return authz.Identity{}, false
	}
	role, ok := c.Get(ctxRole)
	if !ok {
		return authz.Identity{}, false
	}

	id, ok := userID.(uint)
	if !ok {
		return authz.Identity{}, false
	}
	roleStr, ok := role.(string)
	if !ok {
		return authz.Identity{}, false
	}

	return authz.Identity{UserID: id, Role: models.UserRole(roleStr)}, true
}
