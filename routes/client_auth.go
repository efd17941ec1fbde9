package routes

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studio-booking-server/database"
	"studio-booking-server/models"
	"studio-booking-server/utils"
)

// ClientLogin issues a portal token for an activated client account.
func ClientLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	var client models.Client
	if err := database.DB.Where("email = ?", req.Email).First(&client).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if client.PasswordHash == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if !client.IsAccountActive {
		c.JSON(http.StatusForbidden, gin.H{"message": "Account not active. Please set your password first."})
		return
	}

	if !utils.CheckPasswordHash(req.Password, *client.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(client.ID, string(models.RoleClient), "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ForgotPassword creates a reset token for an active account. The
// response never reveals whether the email exists.
func ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	neutral := gin.H{"message": "If an account with this email exists, a reset link has been sent."}

	var client models.Client
	if err := database.DB.Where("email = ? AND is_account_active = ?", req.Email, true).First(&client).Error; err != nil {
		c.JSON(http.StatusOK, neutral)
		return
	}

	token, err := utils.GeneratePasswordToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	passwordToken := models.PasswordToken{
		ClientID:  client.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	if err := database.DB.Create(&passwordToken).Error; err != nil {
		log.Printf("❌ Token insert error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	// TODO: send reset email once the mail provider is wired up
	log.Printf("Reset password link: /reset-password?token=%s", token)

	c.JSON(http.StatusOK, neutral)
}

// redeemPasswordToken validates a token, stores the new hash and marks
// the token used. Activation of the account is caller-controlled.
func redeemPasswordToken(c *gin.Context, activate bool) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token and password are required"})
		return
	}

	var tokenRow models.PasswordToken
	if err := database.DB.Where("token = ? AND used = ?", req.Token, false).First(&tokenRow).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired token"})
		return
	}

	if tokenRow.IsExpired() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token has expired"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	updates := map[string]interface{}{"password_hash": hash}
	if activate {
		updates["is_account_active"] = true
	}

	if err := database.DB.Model(&models.Client{}).Where("id = ?", tokenRow.ClientID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if err := database.DB.Model(&tokenRow).Update("used", true).Error; err != nil {
		log.Printf("⚠️ Failed to mark password token used: %v", err)
	}

	if activate {
		c.JSON(http.StatusOK, gin.H{"message": "Password created successfully. You can now log in."})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully. You can now log in."})
	}
}

// CreatePassword handles first-time account activation.
func CreatePassword(c *gin.Context) {
	redeemPasswordToken(c, true)
}

// ResetPassword handles a password reset for an existing account.
func ResetPassword(c *gin.Context) {
	redeemPasswordToken(c, false)
}

// GetClientBookings returns the authenticated client's own events,
// newest event date first.
func GetClientBookings(c *gin.Context) {
	clientID := c.GetUint("client_id")
	if clientID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var events []models.Event
	if err := database.DB.
		Where("client_id = ?", clientID).
		Order("event_date DESC, created_at DESC").
		Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, events)
}
