package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"studio-booking-server/models"
)

func mediaRouter() *gin.Engine {
	r := gin.New()
	r.Use(asAdmin(7, "boss@studio.local"))
	r.POST("/api/albums", CreateAlbum)
	r.POST("/api/albums/upload", UploadMedia)
	r.GET("/api/albums/media/album/:albumId", GetMediaByAlbum)
	r.GET("/api/albums/recent", GetRecentAlbums)
	r.DELETE("/api/media/:id", DeleteMedia)
	return r
}

func seedGalleryTree(t *testing.T, db *gorm.DB) (models.Gallery, models.Album, models.GalleryMedia) {
	t.Helper()

	label := models.Gallery{Name: "Muslim", Category: "Wedding"}
	if err := db.Create(&label).Error; err != nil {
		t.Fatalf("failed to seed gallery label: %v", err)
	}

	album := models.Album{Name: "Sana & Imran", LabelID: label.ID}
	if err := db.Create(&album).Error; err != nil {
		t.Fatalf("failed to seed album: %v", err)
	}

	albumID := album.ID
	media := models.GalleryMedia{
		GalleryID: label.ID,
		AlbumID:   &albumID,
		S3Key:     "gallery/1/albums/1/1700000000000-first.jpg",
	}
	if err := db.Create(&media).Error; err != nil {
		t.Fatalf("failed to seed media: %v", err)
	}

	return label, album, media
}

func TestDeleteMediaSurvivesStorageFailure(t *testing.T) {
	db := setupTestDB(t)
	store := &fakeStore{DeleteErr: errors.New("bucket unavailable")}
	Media = store
	r := mediaRouter()

	_, _, media := seedGalleryTree(t, db)

	w := performJSON(t, r, http.MethodDelete, "/api/media/"+formatUint(media.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 despite storage failure, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.GalleryMedia{}).Where("id = ?", media.ID).Count(&count)
	if count != 0 {
		t.Fatal("metadata row should be removed even when the bucket delete fails")
	}

	if len(store.Deleted) != 1 || store.Deleted[0] != media.S3Key {
		t.Errorf("expected a delete attempt for %s, got %v", media.S3Key, store.Deleted)
	}
}

func TestDeleteMediaUnknown(t *testing.T) {
	setupTestDB(t)
	Media = &fakeStore{}
	r := mediaRouter()

	w := performJSON(t, r, http.MethodDelete, "/api/media/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestMediaListingSignsKeys(t *testing.T) {
	db := setupTestDB(t)
	Media = &fakeStore{}
	r := mediaRouter()

	_, album, media := seedGalleryTree(t, db)

	w := performJSON(t, r, http.MethodGet, "/api/albums/media/album/"+formatUint(album.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var list []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 media row, got %d", len(list))
	}

	displayURL, _ := list[0]["display_url"].(string)
	if displayURL == "" || displayURL == media.S3Key {
		t.Fatalf("display_url must be a derived URL, got %q", displayURL)
	}
	if list[0]["label"] != "Muslim" || list[0]["category"] != "Wedding" {
		t.Errorf("expected gallery label context, got %v", list[0])
	}
}

func TestCreateAlbumValidation(t *testing.T) {
	db := setupTestDB(t)
	r := mediaRouter()

	w := performJSON(t, r, http.MethodPost, "/api/albums", gin.H{"name": "Teaser"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without label_id, got %d", w.Code)
	}

	w = performJSON(t, r, http.MethodPost, "/api/albums", gin.H{"name": "Teaser", "label_id": 99})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown label, got %d", w.Code)
	}

	label := models.Gallery{Name: "Hindu", Category: "Wedding"}
	if err := db.Create(&label).Error; err != nil {
		t.Fatalf("failed to seed label: %v", err)
	}

	w = performJSON(t, r, http.MethodPost, "/api/albums", gin.H{"name": "Teaser", "label_id": label.ID})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUploadMediaStoresKeysAndCover(t *testing.T) {
	db := setupTestDB(t)
	store := &fakeStore{}
	Media = store
	r := mediaRouter()

	label := models.Gallery{Name: "Hindu", Category: "Wedding"}
	if err := db.Create(&label).Error; err != nil {
		t.Fatalf("failed to seed label: %v", err)
	}
	album := models.Album{Name: "Haldi", LabelID: label.ID}
	if err := db.Create(&album).Error; err != nil {
		t.Fatalf("failed to seed album: %v", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("gallery_id", formatUint(label.ID))
	mw.WriteField("album_id", formatUint(album.ID))
	for _, name := range []string{"one photo.jpg", "two.jpg"} {
		part, err := mw.CreateFormFile("images", name)
		if err != nil {
			t.Fatalf("failed to build form: %v", err)
		}
		part.Write([]byte("jpeg-bytes"))
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/albums/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var rows []models.GalleryMedia
	db.Where("album_id = ?", album.ID).Find(&rows)
	if len(rows) != 2 {
		t.Fatalf("expected 2 media rows, got %d", len(rows))
	}
	if len(store.Uploaded) != 2 {
		t.Fatalf("expected 2 uploads, got %d", len(store.Uploaded))
	}
	for _, row := range rows {
		if row.S3Key == "" {
			t.Fatal("media row must carry the object key")
		}
	}

	var updated models.Album
	db.First(&updated, album.ID)
	if updated.CoverKey == nil {
		t.Fatal("album should receive a cover from the upload")
	}
}
