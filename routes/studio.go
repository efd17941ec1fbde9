package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-booking-server/database"
	"studio-booking-server/models"
	"studio-booking-server/storage"
)

// uploadStudioImage stores the optional profile image and returns its
// key, or nil when the form carries no image.
func uploadStudioImage(c *gin.Context) (*string, error) {
	header, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	if Media == nil {
		return nil, errObjectStoreUnavailable
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	key := storage.StudioKey(header.Filename)
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := Media.Upload(c.Request.Context(), key, file, contentType); err != nil {
		return nil, err
	}
	return &key, nil
}

// CreateStudioProfile creates the singleton profile row (id = 1).
func CreateStudioProfile(c *gin.Context) {
	studioName := c.PostForm("studio_name")
	if studioName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "studio_name is required"})
		return
	}

	var existing int64
	database.DB.Model(&models.StudioProfile{}).Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Studio profile already exists. Use update instead."})
		return
	}

	imageKey, err := uploadStudioImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image: " + err.Error()})
		return
	}

	optional := func(field string) *string {
		if v := c.PostForm(field); v != "" {
			return &v
		}
		return nil
	}

	profile := models.StudioProfile{
		ID:          1,
		StudioName:  studioName,
		Description: optional("description"),
		ImageKey:    imageKey,
		Address:     optional("address"),
		Phone:       optional("phone"),
		Email:       optional("email"),
		Website:     optional("website"),
		Instagram:   optional("instagram"),
	}

	if err := database.DB.Create(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Studio profile created successfully",
		"profile": profile,
	})
}

// GetStudioDetails returns the profile with a short-lived image URL.
func GetStudioDetails(c *gin.Context) {
	var profile models.StudioProfile
	if err := database.DB.First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Studio profile not found"})
		return
	}

	var imageURL *string
	if profile.ImageKey != nil {
		imageURL = signedOrNil(c, *profile.ImageKey)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          profile.ID,
		"studio_name": profile.StudioName,
		"description": profile.Description,
		"image_url":   imageURL,
		"address":     profile.Address,
		"phone":       profile.Phone,
		"email":       profile.Email,
		"website":     profile.Website,
		"instagram":   profile.Instagram,
		"updated_at":  profile.UpdatedAt,
	})
}

// UpdateStudioProfile applies a partial update: omitted fields keep
// their value. A new image replaces the old one; deleting the old
// object is a soft path.
func UpdateStudioProfile(c *gin.Context) {
	var profile models.StudioProfile
	if err := database.DB.First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Studio profile not found"})
		return
	}

	updates := map[string]interface{}{}
	for _, field := range []string{"studio_name", "description", "address", "phone", "email", "website", "instagram"} {
		if v := c.PostForm(field); v != "" {
			updates[field] = v
		}
	}

	imageKey, err := uploadStudioImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image: " + err.Error()})
		return
	}
	if imageKey != nil {
		if profile.ImageKey != nil && Media != nil {
			if err := Media.Delete(c.Request.Context(), *profile.ImageKey); err != nil {
				log.Printf("⚠️ Failed to delete old studio image %s: %v", *profile.ImageKey, err)
			}
		}
		updates["image_url"] = *imageKey
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields provided for update"})
		return
	}

	if err := database.DB.Model(&profile).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Studio profile updated successfully"})
}
