package routes

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"studio-booking-server/models"
)

func paymentsRouter() *gin.Engine {
	r := gin.New()
	r.Use(asAdmin(7, "boss@studio.local"))
	r.POST("/api/payments/record", RecordPayment)
	r.POST("/api/payments/notify", NotifyPayment)
	r.GET("/api/payments/event/:eventId", ListPaymentsByEvent)
	return r
}

func TestRecordPaymentUnknownEvent(t *testing.T) {
	setupTestDB(t)
	setupTestNotifier(t)
	r := paymentsRouter()

	w := performJSON(t, r, http.MethodPost, "/api/payments/record", gin.H{
		"eventId": 999,
		"amount":  500,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestRecordPaymentRejectsDuplicateType(t *testing.T) {
	db := setupTestDB(t)
	setupTestNotifier(t)
	r := paymentsRouter()

	event := seedEvent(t, db, models.EventStatusNew)

	w := performJSON(t, r, http.MethodPost, "/api/payments/record", gin.H{
		"eventId":      event.ID,
		"amount":       400,
		"payment_type": "ADVANCE",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("first payment: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = performJSON(t, r, http.MethodPost, "/api/payments/record", gin.H{
		"eventId":      event.ID,
		"amount":       100,
		"payment_type": "ADVANCE",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("second ADVANCE: expected 409, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.Payment{}).Where("event_id = ?", event.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected one payment row, got %d", count)
	}
}

func TestRecordPaymentUpdatesEventTotals(t *testing.T) {
	db := setupTestDB(t)
	setupTestNotifier(t)
	r := paymentsRouter()

	event := seedEvent(t, db, models.EventStatusNew)
	db.Model(&event).Update("amount", 1000.0)

	w := performJSON(t, r, http.MethodPost, "/api/payments/record", gin.H{
		"eventId":      event.ID,
		"amount":       400,
		"payment_type": "ADVANCE",
		"method":       "UPI",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("advance: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var afterAdvance models.Event
	db.First(&afterAdvance, event.ID)
	if afterAdvance.PaidAmount != 400 {
		t.Errorf("expected paid_amount 400, got %v", afterAdvance.PaidAmount)
	}
	if afterAdvance.Advance != 400 {
		t.Errorf("expected advance 400, got %v", afterAdvance.Advance)
	}
	if afterAdvance.AmountStatus != 0 {
		t.Errorf("expected amount_status 0 while balance remains, got %d", afterAdvance.AmountStatus)
	}

	w = performJSON(t, r, http.MethodPost, "/api/payments/record", gin.H{
		"eventId":      event.ID,
		"amount":       600,
		"payment_type": "FINAL",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("final: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var afterFinal models.Event
	db.First(&afterFinal, event.ID)
	if afterFinal.PaidAmount != 1000 {
		t.Errorf("expected paid_amount 1000, got %v", afterFinal.PaidAmount)
	}
	if afterFinal.AmountStatus != 1 {
		t.Errorf("expected amount_status 1 once fully paid, got %d", afterFinal.AmountStatus)
	}

	var notifications int64
	db.Model(&models.Notification{}).Where("type = ?", models.NotificationPaymentReceived).Count(&notifications)
	if notifications != 2 {
		t.Errorf("expected 2 PAYMENT_RECEIVED notifications, got %d", notifications)
	}
}

func TestNotifyPaymentWritesNoPaymentRow(t *testing.T) {
	db := setupTestDB(t)
	setupTestNotifier(t)
	r := paymentsRouter()

	w := performJSON(t, r, http.MethodPost, "/api/payments/notify", gin.H{
		"invoiceId":  "BK-42",
		"amount":     250,
		"clientName": "Anu",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var payments int64
	db.Model(&models.Payment{}).Count(&payments)
	if payments != 0 {
		t.Fatalf("notify must not create payment rows, found %d", payments)
	}

	var notifications int64
	db.Model(&models.Notification{}).Where("type = ?", models.NotificationPaymentReceived).Count(&notifications)
	if notifications != 1 {
		t.Fatalf("expected the notification to be persisted, got %d", notifications)
	}
}

func TestListPaymentsEmpty(t *testing.T) {
	db := setupTestDB(t)
	r := paymentsRouter()

	event := seedEvent(t, db, models.EventStatusNew)

	w := performJSON(t, r, http.MethodGet, "/api/payments/event/"+formatUint(event.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when no payments exist, got %d", w.Code)
	}
}
