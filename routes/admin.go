package routes

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"

	"studio-booking-server/config"
	"studio-booking-server/database"
	"studio-booking-server/models"
	"studio-booking-server/services"
	"studio-booking-server/utils"
)

// GetCurrentAdmin returns the logged-in admin profile (DB-backed)
func GetCurrentAdmin(c *gin.Context) {
	adminID := c.GetUint("user_id")

	var admin models.User
	if err := database.DB.Where("id = ? AND role = ?", adminID, models.RoleAdmin).First(&admin).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         admin.ID,
		"email":      admin.Email,
		"role":       admin.Role,
		"name":       admin.Name,
		"phone":      admin.Phone,
		"avatar_url": admin.AvatarURL,
		"createdAt":  admin.CreatedAt,
	})
}

// UpdateProfile applies a partial update of the admin's name/phone.
func UpdateProfile(c *gin.Context) {
	adminID := c.GetUint("user_id")

	var req struct {
		Name  *string `json:"name"`
		Phone *string `json:"phone"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields provided for update"})
		return
	}

	result := database.DB.Model(&models.User{}).Where("id = ?", adminID).Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// validateImageFile validates extension and size (<= 5MB)
func validateImageFile(h *multipart.FileHeader) bool {
	if h == nil || h.Size <= 0 || h.Size > 5*1024*1024 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(h.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	default:
		return false
	}
}

// UploadAvatar uploads the admin profile photo to Cloudinary and stores
// the delivered URL on the user row.
func UploadAvatar(c *gin.Context) {
	adminID := c.GetUint("user_id")

	header, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	if !validateImageFile(header) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid avatar image"})
		return
	}

	cfg := config.AppConfig.Cloudinary
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		log.Printf("❌ Cloudinary environment variables not set")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cloudinary not configured"})
		return
	}

	cloudinaryURL := fmt.Sprintf("cloudinary://%s:%s@%s", cfg.APIKey, cfg.APISecret, cfg.CloudName)
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		log.Printf("❌ Failed to initialize Cloudinary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cloudinary initialization failed"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read file"})
		return
	}
	defer file.Close()

	overwrite := true
	unique := true
	up, err := cld.Upload.Upload(c.Request.Context(), file, uploader.UploadParams{
		Folder:         "admins/avatars/" + strconv.Itoa(int(adminID)),
		PublicID:       strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)),
		Overwrite:      &overwrite,
		UniqueFilename: &unique,
		ResourceType:   "image",
	})
	if err != nil {
		log.Printf("❌ Avatar upload failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar upload failed"})
		return
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", adminID).
		Update("avatar_url", up.SecureURL).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save avatar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": up.SecureURL})
}

// ListSessions returns the admin's login sessions newest-first.
func ListSessions(c *gin.Context) {
	adminID := c.GetUint("user_id")

	sessionService := services.NewSessionService(database.DB)
	sessions, err := sessionService.ListSessions(adminID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// ChangePassword verifies the current password before storing a new hash.
func ChangePassword(c *gin.Context) {
	adminID := c.GetUint("user_id")

	var req struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=8"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current_password and new_password (min 8 chars) are required"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, adminID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		return
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	if err := database.DB.Model(&user).Update("password_hash", hash).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
