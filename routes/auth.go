package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-booking-server/database"
	"studio-booking-server/models"
	"studio-booking-server/services"
	"studio-booking-server/utils"
)

// Login handles admin login. Besides issuing the token it rewrites the
// user's session bookkeeping: prior sessions lose currency, a new
// current session row captures device, user-agent and caller IP.
func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ? AND role = ?", req.Email, models.RoleAdmin).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role), user.Email)
	if err != nil {
		log.Printf("❌ Failed to generate token for admin %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	sessionService := services.NewSessionService(database.DB)
	if _, err := sessionService.RecordLogin(user.ID, c.Request); err != nil {
		// Session bookkeeping must not block the login itself.
		log.Printf("⚠️ Session bookkeeping failed for admin %d: %v", user.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
