package routes

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"studio-booking-server/models"
)

func bookingRouter() *gin.Engine {
	r := gin.New()
	r.POST("/api/booking", CreateBooking)
	return r
}

func TestCreateBookingRequiresFields(t *testing.T) {
	setupTestDB(t)
	setupTestNotifier(t)
	r := bookingRouter()

	w := performJSON(t, r, http.MethodPost, "/api/booking", gin.H{
		"name":       "Priya",
		"event_type": "Wedding",
		"event_date": "2026-11-20",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing phone, got %d", w.Code)
	}
}

func TestCreateBookingCreatesClientAndEvent(t *testing.T) {
	db := setupTestDB(t)
	setupTestNotifier(t)
	r := bookingRouter()

	w := performJSON(t, r, http.MethodPost, "/api/booking", gin.H{
		"name":       "Priya Nair",
		"phone":      "9876543210",
		"email":      "priya@example.com",
		"event_type": "Wedding",
		"event_date": "2026-11-20",
		"message":    "Two day shoot",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var client models.Client
	if err := db.Where("phone = ?", "9876543210").First(&client).Error; err != nil {
		t.Fatalf("client was not created: %v", err)
	}

	var event models.Event
	if err := db.Where("client_id = ?", client.ID).First(&event).Error; err != nil {
		t.Fatalf("event was not created: %v", err)
	}
	if event.Status != models.EventStatusNew {
		t.Errorf("expected status NEW, got %s", event.Status)
	}
	if event.Stage != models.EventStageEnquiry {
		t.Errorf("expected stage ENQUIRY, got %s", event.Stage)
	}
	if event.Source != models.EventSourceWebsite {
		t.Errorf("expected source WEBSITE, got %s", event.Source)
	}

	var notification models.Notification
	if err := db.Where("type = ?", models.NotificationNewBooking).First(&notification).Error; err != nil {
		t.Fatalf("NEW_BOOKING notification was not persisted: %v", err)
	}
}

func TestCreateBookingReusesClientByPhone(t *testing.T) {
	db := setupTestDB(t)
	setupTestNotifier(t)
	r := bookingRouter()

	existing := models.Client{Name: "Priya Nair", Phone: "9876543210"}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}

	w := performJSON(t, r, http.MethodPost, "/api/booking", gin.H{
		"name":       "Priya N",
		"phone":      "9876543210",
		"event_type": "Engagement",
		"event_date": "2026-12-05",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.Client{}).Where("phone = ?", "9876543210").Count(&count)
	if count != 1 {
		t.Fatalf("expected one client for the phone number, got %d", count)
	}

	var event models.Event
	if err := db.Where("client_id = ?", existing.ID).First(&event).Error; err != nil {
		t.Fatalf("event not linked to existing client: %v", err)
	}
}

func TestCreateBookingSucceedsWithoutNotifier(t *testing.T) {
	db := setupTestDB(t)
	Notifier = nil
	r := bookingRouter()

	w := performJSON(t, r, http.MethodPost, "/api/booking", gin.H{
		"name":       "Priya Nair",
		"phone":      "9876543211",
		"event_type": "Wedding",
		"event_date": "2026-11-21",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("booking must succeed without a notifier, got %d: %s", w.Code, w.Body.String())
	}

	var events int64
	db.Model(&models.Event{}).Count(&events)
	if events != 1 {
		t.Fatalf("expected the event row, got %d", events)
	}
}
