package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-booking-server/database"
	"studio-booking-server/models"
)

// Public read-only gallery browsing for the studio website. No auth;
// every image reference is a short-lived signed URL, never a raw key.

// PublicRecentAlbums returns the six most recent albums.
func PublicRecentAlbums(c *gin.Context) {
	GetRecentAlbums(c)
}

// PublicAlbumsByCategory lists albums whose gallery label belongs to a
// category.
func PublicAlbumsByCategory(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category is required"})
		return
	}

	var albums []models.Album
	if err := database.DB.
		Preload("Label").
		Joins("JOIN gallery ON gallery.id = albums.label_id").
		Where("gallery.category = ?", category).
		Order("albums.created_at DESC").
		Find(&albums).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(albums))
	for i := range albums {
		var count int64
		database.DB.Model(&models.GalleryMedia{}).Where("album_id = ?", albums[i].ID).Count(&count)
		out = append(out, albumSummary(c, &albums[i], count))
	}
	c.JSON(http.StatusOK, out)
}

// PublicAlbumsByGallery lists the albums of one gallery label.
func PublicAlbumsByGallery(c *gin.Context) {
	galleryID, ok := parseID(c, "galleryId")
	if !ok {
		return
	}

	var albums []models.Album
	if err := database.DB.
		Preload("Label").
		Where("label_id = ?", galleryID).
		Order("created_at DESC").
		Find(&albums).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(albums))
	for i := range albums {
		var count int64
		database.DB.Model(&models.GalleryMedia{}).Where("album_id = ?", albums[i].ID).Count(&count)
		out = append(out, albumSummary(c, &albums[i], count))
	}
	c.JSON(http.StatusOK, out)
}

// PublicMediaByAlbum returns an album's media with display URLs; 404
// when the album has none.
func PublicMediaByAlbum(c *gin.Context) {
	albumID, ok := parseID(c, "albumId")
	if !ok {
		return
	}

	var media []models.GalleryMedia
	if err := database.DB.
		Preload("Gallery").
		Where("album_id = ?", albumID).
		Order("created_at DESC").
		Find(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(media) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No media found for this album"})
		return
	}

	out := make([]gin.H, 0, len(media))
	for i := range media {
		out = append(out, mediaResponse(c, &media[i]))
	}
	c.JSON(http.StatusOK, out)
}
