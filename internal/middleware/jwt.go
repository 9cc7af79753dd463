package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/memorylane634/RealEstateMarketplace/internal/config"
	"github.com/memorylane634/RealEstateMarketplace/internal/models"
	"github.com/memorylane634/RealEstateMarketplace/internal/service"
)

const identityKey = "identity"

func secret() []byte {
	return []byte(config.JWTSecret())
}

// GenerateToken issues a token carrying the user's id and role. Verification
// state is deliberately not baked into the claim set; it is reloaded from the
// store on every request so an admin decision takes effect without re-login.
func GenerateToken(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": float64(userID),
		"role":    role,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// identityFromToken parses the bearer token and rebuilds the request identity
// from the user row it names.
func identityFromToken(tokenString string) (*service.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	var user models.User
	if err := config.DB.First(&user, uint(userID)).Error; err != nil {
		return nil, err
	}
	return &service.Identity{
		UserID:     user.ID,
		Role:       user.Role,
		IsVerified: user.IsVerified,
	}, nil
}

// CurrentIdentity returns the identity attached by the auth middleware, or
// nil for anonymous requests.
func CurrentIdentity(c *gin.Context) *service.Identity {
	if v, exists := c.Get(identityKey); exists {
		if ident, ok := v.(*service.Identity); ok {
			return ident
		}
	}
	return nil
}

// authenticate parses the bearer token and attaches the caller's identity,
// aborting with 401 on failure. It never advances the handler chain; the
// composed middlewares below run their own checks first.
func authenticate(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return false
	}

	ident, err := identityFromToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return false
	}

	c.Set(identityKey, ident)
	return true
}

// RequireAuth ensures a valid JWT is present and loads the caller's identity.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticate(c)
	}
}

// OptionalAuth loads an identity when a valid token is present but lets
// anonymous requests through. Used by the public listing endpoints, where
// admins see more than everyone else.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			if ident, err := identityFromToken(strings.TrimPrefix(authHeader, "Bearer ")); err == nil {
				c.Set(identityKey, ident)
			}
		}
		c.Next()
	}
}

// RequireVerified ensures the JWT is valid and the account passed admin
// verification.
func RequireVerified() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}
		if err := service.RequireVerified(CurrentIdentity(c)); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Your account must be verified to access this feature"})
		}
	}
}

// RequireAuthWithRole ensures the JWT is valid and the user has a specific role
func RequireAuthWithRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}
		if err := service.RequireRole(CurrentIdentity(c), requiredRole); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		}
	}
}
