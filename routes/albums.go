package routes

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studio-booking-server/database"
	"studio-booking-server/models"
	"studio-booking-server/storage"
)

var errObjectStoreUnavailable = errors.New("object store not configured")

// uploadMediaFile streams one multipart file into the object store and
// returns the stored key.
func uploadMediaFile(c *gin.Context, galleryID, albumID uint, header *multipart.FileHeader) (string, error) {
	if Media == nil {
		return "", errObjectStoreUnavailable
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	key := storage.MediaKey(galleryID, albumID, header.Filename)
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := Media.Upload(c.Request.Context(), key, file, contentType); err != nil {
		return "", err
	}
	return key, nil
}

// CreateAlbum creates an empty album under a gallery label.
func CreateAlbum(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		LabelID *uint  `json:"label_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.LabelID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and label_id are required"})
		return
	}

	var label models.Gallery
	if err := database.DB.First(&label, *req.LabelID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery label not found"})
		return
	}

	album := models.Album{
		Name:    req.Name,
		LabelID: label.ID,
	}

	if err := database.DB.Create(&album).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Album created successfully",
		"album":   album,
	})
}

// UploadMedia accepts a multipart batch of images and attaches them to
// an album. Each file is uploaded to the object store first; only a
// successful upload gets a metadata row.
func UploadMedia(c *gin.Context) {
	galleryIDRaw := c.PostForm("gallery_id")
	albumIDRaw := c.PostForm("album_id")

	galleryID, err := strconv.ParseUint(galleryIDRaw, 10, 64)
	if err != nil || galleryID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gallery_id is required"})
		return
	}
	albumID, err := strconv.ParseUint(albumIDRaw, 10, 64)
	if err != nil || albumID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "album_id is required"})
		return
	}

	var album models.Album
	if err := database.DB.First(&album, albumID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No images provided"})
		return
	}

	uploaded := make([]gin.H, 0, len(files))
	for _, header := range files {
		key, err := uploadMediaFile(c, uint(galleryID), uint(albumID), header)
		if err != nil {
			log.Printf("❌ Upload failed for %s: %v", header.Filename, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload " + header.Filename})
			return
		}

		aID := uint(albumID)
		media := models.GalleryMedia{
			GalleryID: uint(galleryID),
			AlbumID:   &aID,
			S3Key:     key,
		}
		if err := database.DB.Create(&media).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		uploaded = append(uploaded, gin.H{
			"id":     media.ID,
			"s3_url": media.S3Key,
		})
	}

	// Give the album a cover if it has none yet.
	if album.CoverKey == nil && len(uploaded) > 0 {
		lastKey := uploaded[len(uploaded)-1]["s3_url"].(string)
		if err := database.DB.Model(&album).Update("cover_key", lastKey).Error; err != nil {
			log.Printf("⚠️ Failed to set album cover: %v", err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Media uploaded successfully",
		"count":   len(uploaded),
		"media":   uploaded,
	})
}

// UpdateAlbumFull edits an album in one request: rename, re-label,
// delete listed media, upload new images, and pick a cover. Cover
// priority: an explicit cover_key wins, then the most recent upload,
// otherwise the cover stays as it was.
func UpdateAlbumFull(c *gin.Context) {
	albumID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var album models.Album
	if err := database.DB.First(&album, albumID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
		return
	}

	updates := map[string]interface{}{}
	if name := c.PostForm("name"); name != "" {
		updates["name"] = name
	}
	if labelRaw := c.PostForm("label_id"); labelRaw != "" {
		labelID, err := strconv.ParseUint(labelRaw, 10, 64)
		if err != nil || labelID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid label_id"})
			return
		}
		var label models.Gallery
		if err := database.DB.First(&label, labelID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Gallery label not found"})
			return
		}
		updates["label_id"] = uint(labelID)
	}

	// Delete the listed media rows. Object-store deletion is a soft
	// path: the metadata row goes away even when the bucket call fails.
	deleteIDs := c.PostFormArray("delete_media_ids")
	for _, raw := range deleteIDs {
		mediaID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			continue
		}
		var media models.GalleryMedia
		if err := database.DB.First(&media, mediaID).Error; err != nil {
			continue
		}
		if Media != nil {
			if err := Media.Delete(c.Request.Context(), media.S3Key); err != nil {
				log.Printf("⚠️ Failed to delete object %s: %v", media.S3Key, err)
			}
		}
		if err := database.DB.Delete(&media).Error; err != nil {
			log.Printf("⚠️ Failed to delete media row %d: %v", mediaID, err)
		}
	}

	// Upload any new images.
	var lastUploadedKey string
	if form, err := c.MultipartForm(); err == nil {
		galleryID := album.LabelID
		if v, ok := updates["label_id"].(uint); ok {
			galleryID = v
		}
		for _, header := range form.File["images"] {
			key, err := uploadMediaFile(c, galleryID, album.ID, header)
			if err != nil {
				log.Printf("❌ Upload failed for %s: %v", header.Filename, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload " + header.Filename})
				return
			}
			aID := album.ID
			media := models.GalleryMedia{
				GalleryID: galleryID,
				AlbumID:   &aID,
				S3Key:     key,
			}
			if err := database.DB.Create(&media).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			lastUploadedKey = key
		}
	}

	if coverKey := c.PostForm("cover_key"); coverKey != "" {
		updates["cover_key"] = coverKey
	} else if lastUploadedKey != "" {
		updates["cover_key"] = lastUploadedKey
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&album).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Album updated successfully",
		"albumId": album.ID,
	})
}

// mediaResponse renders a media row with its gallery label context and
// a short-lived display URL derived from the stored key.
func mediaResponse(c *gin.Context, media *models.GalleryMedia) gin.H {
	return gin.H{
		"id":          media.ID,
		"gallery_id":  media.GalleryID,
		"album_id":    media.AlbumID,
		"title":       media.Title,
		"s3_url":      media.S3Key,
		"display_url": signedOrNil(c, media.S3Key),
		"label":       media.Gallery.Name,
		"category":    media.Gallery.Category,
		"created_at":  media.CreatedAt,
	}
}

// GetAllMedia lists every media row with its label and display URL.
func GetAllMedia(c *gin.Context) {
	var media []models.GalleryMedia
	if err := database.DB.
		Preload("Gallery").
		Order("created_at DESC").
		Find(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(media))
	for i := range media {
		out = append(out, mediaResponse(c, &media[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetMediaByAlbum lists an album's media, newest first.
func GetMediaByAlbum(c *gin.Context) {
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

	out := make([]gin.H, 0, len(media))
	for i := range media {
		out = append(out, mediaResponse(c, &media[i]))
	}
	c.JSON(http.StatusOK, out)
}

// albumSummary renders an album with its media count and signed cover.
func albumSummary(c *gin.Context, album *models.Album, mediaCount int64) gin.H {
	var coverURL *string
	if album.CoverKey != nil {
		coverURL = signedOrNil(c, *album.CoverKey)
	}
	return gin.H{
		"id":          album.ID,
		"name":        album.Name,
		"label_id":    album.LabelID,
		"label":       album.Label.Name,
		"category":    album.Label.Category,
		"media_count": mediaCount,
		"cover_url":   coverURL,
		"created_at":  album.CreatedAt,
	}
}

// GetRecentAlbums returns the six most recently created albums.
func GetRecentAlbums(c *gin.Context) {
	var albums []models.Album
	if err := database.DB.
		Preload("Label").
		Order("created_at DESC").
		Limit(6).
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

// DeleteAlbum removes an album, its media rows and their stored
// objects. Object deletion failures are logged, never fatal.
func DeleteAlbum(c *gin.Context) {
	albumID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var album models.Album
	if err := database.DB.First(&album, albumID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
		return
	}

	var media []models.GalleryMedia
	if err := database.DB.Where("album_id = ?", albumID).Find(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for _, m := range media {
		if Media != nil {
			if err := Media.Delete(c.Request.Context(), m.S3Key); err != nil {
				log.Printf("⚠️ Failed to delete object %s: %v", m.S3Key, err)
			}
		}
	}

	if err := database.DB.Where("album_id = ?", albumID).Delete(&models.GalleryMedia{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := database.DB.Delete(&album).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Album deleted successfully",
		"albumId": albumID,
	})
}
