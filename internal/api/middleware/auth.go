package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"attendify/backend/internal/model"
	"attendify/backend/pkg/jwt"
	"attendify/backend/pkg/redis"
	"attendify/backend/pkg/response"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	CtxUserID   = "user_id"
	CtxRole     = "role"
	CtxName     = "name"
	CtxTokenJTI = "token_jti"
	CtxTokenExp = "token_exp"
)

// JWTAuth extracts and verifies the bearer token from
// Authorization: Bearer <token>. When Redis is available, revoked tokens
// (logout) are rejected; without Redis the check is skipped.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, "Invalid or expired token")
				c.Abort()
				return
			}
			// On Redis errors the token is accepted; revocation is
			// best-effort and the token still expires on its own.
		}

		role, err := model.ParseRole(claims.Role)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.AccountID)
		c.Set(CtxRole, role)
		c.Set(CtxName, claims.Name)
		c.Set(CtxTokenJTI, claims.ID)
		c.Set(CtxTokenExp, claims.ExpiresAt.Time)

		c.Next()
	}
}

// RoleAuth requires the authenticated identity to hold the exact role.
func RoleAuth(required model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(CtxRole)
		if !exists {
			response.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		role, ok := v.(model.Role)
		if !ok {
			response.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		switch role {
		case model.RoleAdmin, model.RoleTeacher, model.RoleStudent:
			if role == required {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Access denied")
		c.Abort()
	}
}
