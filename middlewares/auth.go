package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"foodchef/utils"
)

// context keys under which the authenticated identity is stored
const (
	ctxUserID = "authUserId"
	ctxRole   = "authRole"
)

// UserID returns the authenticated account id, or 0 outside an
// authenticated request.
func UserID(c *gin.Context) uint {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// Role returns the authenticated account role, or "".
func Role(c *gin.Context) string {
	if v, ok := c.Get(ctxRole); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// AuthMiddleware validates the bearer JWT and, when roles are given,
// requires the token's role to be one of them.
func AuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "error": "missing or invalid token"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"status": "error", "error": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
