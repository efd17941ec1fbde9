package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-booking-server/database"
	"studio-booking-server/models"
)

// DeleteMedia removes one media item. The metadata row is removed even
// when the object-store delete fails.
func DeleteMedia(c *gin.Context) {
	mediaID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var media models.GalleryMedia
	if err := database.DB.First(&media, mediaID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		return
	}

	if Media != nil {
		if err := Media.Delete(c.Request.Context(), media.S3Key); err != nil {
			log.Printf("⚠️ Failed to delete object %s: %v", media.S3Key, err)
		}
	}

	if err := database.DB.Delete(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Media deleted successfully",
		"id":      mediaID,
	})
}
