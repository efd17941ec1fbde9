package routes

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"studio-booking-server/models"
	"studio-booking-server/utils"
)

func authRouter() *gin.Engine {
	r := gin.New()
	r.POST("/api/auth/login", Login)
	return r
}

func seedAdmin(t *testing.T, db *gorm.DB, email, password string) models.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	admin := models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Name:         "Owner",
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	return admin
}

func TestLoginIssuesTokenAndSession(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter()

	seedAdmin(t, db, "owner@studio.local", "s3cret-pass")

	w := performJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "owner@studio.local",
		"password": "s3cret-pass",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("expected a token in the response")
	}

	claims, err := utils.VerifyToken(token)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if claims.Role != string(models.RoleAdmin) {
		t.Errorf("expected Admin role claim, got %s", claims.Role)
	}

	var sessions int64
	db.Model(&models.UserSession{}).Count(&sessions)
	if sessions != 1 {
		t.Fatalf("expected one session row, got %d", sessions)
	}
}

func TestLoginMarksOnlyLatestSessionCurrent(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter()

	admin := seedAdmin(t, db, "owner@studio.local", "s3cret-pass")

	for i := 0; i < 2; i++ {
		w := performJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
			"email":    "owner@studio.local",
			"password": "s3cret-pass",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("login %d: expected 200, got %d", i+1, w.Code)
		}
	}

	var total, current int64
	db.Model(&models.UserSession{}).Where("user_id = ?", admin.ID).Count(&total)
	db.Model(&models.UserSession{}).Where("user_id = ? AND is_current = ?", admin.ID, true).Count(&current)

	if total != 2 {
		t.Errorf("expected 2 session rows, got %d", total)
	}
	if current != 1 {
		t.Errorf("expected exactly one current session, got %d", current)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter()

	seedAdmin(t, db, "owner@studio.local", "s3cret-pass")

	w := performJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "owner@studio.local",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
