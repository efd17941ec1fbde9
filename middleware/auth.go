package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studio-booking-server/database"
	"studio-booking-server/models"
	"studio-booking-server/utils"
)

// AuthMiddleware validates the bearer token and requires the Admin
// role. Identity (id, email, role) is attached to the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token missing"})
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		if claims.Role != string(models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		email := claims.Email
		if email == "" {
			// Older tokens carry no email; resolve it from the profile.
			var user models.User
			if err := database.DB.Select("email").First(&user, claims.UserID).Error; err == nil {
				email = user.Email
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", email)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// ClientAuthMiddleware is the lighter identity check for the client
// portal: a valid token with the client role claim.
func ClientAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token missing"})
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		if claims.Role != string(models.RoleClient) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		c.Set("client_id", claims.UserID)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}
