package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/memorylane634/RealEstateMarketplace/internal/config"
)

// RequireAdminSecret guards the admin console trust domain: a single shared
// secret compared against ADMIN_PASSWORD. This is deliberately separate from
// the role-based admin user; a console caller carries no user identity.
func RequireAdminSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		configured := config.AdminConsoleSecret()
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if configured == "" || subtle.ConstantTimeCompare([]byte(token), []byte(configured)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid admin password"})
			return
		}

		c.Next()
	}
}
