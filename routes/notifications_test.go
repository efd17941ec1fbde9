package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"studio-booking-server/models"
)

func notificationsRouter() *gin.Engine {
	r := gin.New()
	r.Use(asAdmin(7, "boss@studio.local"))
	r.GET("/api/notifications", GetNotifications)
	r.PUT("/api/notifications/:id/read", MarkNotificationRead)
	return r
}

func TestMarkNotificationReadIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	setupTestNotifier(t)
	r := notificationsRouter()

	n := models.Notification{Type: models.NotificationNewBooking, Payload: `{"eventId":1}`}
	if err := db.Create(&n).Error; err != nil {
		t.Fatalf("failed to seed notification: %v", err)
	}

	for i := 0; i < 2; i++ {
		w := performJSON(t, r, http.MethodPut, "/api/notifications/"+formatUint(n.ID)+"/read", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d: %s", i+1, w.Code, w.Body.String())
		}
	}

	var updated models.Notification
	db.First(&updated, n.ID)
	if !updated.IsRead {
		t.Fatal("notification should be read")
	}
}

func TestMarkNotificationReadUnknown(t *testing.T) {
	setupTestDB(t)
	r := notificationsRouter()

	w := performJSON(t, r, http.MethodPut, "/api/notifications/999/read", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetNotificationsDecodesPayload(t *testing.T) {
	db := setupTestDB(t)
	r := notificationsRouter()

	n := models.Notification{Type: models.NotificationNewClient, Payload: `{"clientId":12,"name":"Anu"}`}
	if err := db.Create(&n).Error; err != nil {
		t.Fatalf("failed to seed notification: %v", err)
	}

	w := performJSON(t, r, http.MethodGet, "/api/notifications", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var list []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(list))
	}

	payload, ok := list[0]["payload"].(map[string]interface{})
	if !ok {
		t.Fatalf("payload was not decoded into an object: %v", list[0]["payload"])
	}
	if payload["name"] != "Anu" {
		t.Errorf("unexpected payload contents: %v", payload)
	}
}
