package middleware

import (
	"net/http"

	"aurora/config"
	"aurora/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuth guards mutating admin endpoints with the static admin key. With
// no key configured, every admin mutation is rejected.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := config.AppConfig.AdminKey
		if expected == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access is not configured"})
			return
		}
		token := utils.BearerToken(c.GetHeader("Authorization"))
		if token != expected {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized admin access"})
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
