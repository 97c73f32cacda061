package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// APIKeyAuth authenticates JSON API requests against a static bearer-key
// allow-list from config.
func APIKeyAuth(validKeys []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(validKeys))
	for _, k := range validKeys {
		allowed[k] = true
	}
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "error": "API key required"})
			c.Abort()
			return
		}
		key := strings.TrimPrefix(h, "Bearer ")
		if !allowed[key] {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "error": "Invalid API key"})
			c.Abort()
			return
		}
		c.Next()
	}
}
