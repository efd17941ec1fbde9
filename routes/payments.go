package routes

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"studio-booking-server/database"
	"studio-booking-server/models"
)

// applyPaymentToEvent rolls a recorded payment into the event's money
// summary: PaidAmount accumulates, Advance mirrors the ADVANCE payment,
// AmountStatus flips to 1 once PaidAmount covers the quoted Amount.
func applyPaymentToEvent(tx *gorm.DB, event *models.Event, payment *models.Payment) error {
	event.PaidAmount += payment.Amount
	if payment.PaymentType == models.PaymentTypeAdvance {
		event.Advance = payment.Amount
	}
	if event.Amount > 0 && event.PaidAmount >= event.Amount {
		event.AmountStatus = 1
	}
	return tx.Model(event).Updates(map[string]interface{}{
		"paid_amount":   event.PaidAmount,
		"advance":       event.Advance,
		"amount_status": event.AmountStatus,
	}).Error
}

// RecordPayment records a manual payment against an event. One payment
// per (event, type): a second ADVANCE or FINAL for the same event is a
// conflict.
func RecordPayment(c *gin.Context) {
	var req struct {
		EventID     *uint    `json:"eventId"`
		Amount      *float64 `json:"amount"`
		PaymentType string   `json:"payment_type"`
		Method      *string  `json:"method"`
		Reference   *string  `json:"reference"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.EventID == nil || req.Amount == nil || *req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "eventId and a positive amount are required"})
		return
	}

	paymentType := models.PaymentType(req.PaymentType)
	if paymentType == "" {
		paymentType = models.PaymentTypeAdvance
	}
	if paymentType != models.PaymentTypeAdvance && paymentType != models.PaymentTypeFinal {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment_type must be ADVANCE or FINAL"})
		return
	}

	var event models.Event
	if err := database.DB.Preload("Client").First(&event, *req.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var existing int64
	if err := database.DB.Model(&models.Payment{}).
		Where("event_id = ? AND payment_type = ?", event.ID, paymentType).
		Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("A %s payment already exists for this event", paymentType)})
		return
	}

	payment := models.Payment{
		EventID:     event.ID,
		Amount:      *req.Amount,
		PaymentType: paymentType,
		Method:      req.Method,
		Reference:   req.Reference,
	}
	if adminID := c.GetUint("user_id"); adminID != 0 {
		payment.RecordedBy = &adminID
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return applyPaymentToEvent(tx, &event, &payment)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if Notifier != nil {
		Notifier.Publish(models.NotificationPaymentReceived, "paymentReceived", gin.H{
			"eventId":     event.ID,
			"clientName":  event.Client.Name,
			"amount":      payment.Amount,
			"paymentType": payment.PaymentType,
			"method":      payment.Method,
			"reference":   payment.Reference,
			"invoice":     fmt.Sprintf("BK-%d", event.ID),
			"timestamp":   time.Now().UTC(),
		}, nil)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Payment recorded successfully",
		"paymentId": payment.ID,
		"eventId":   event.ID,
		"invoice":   fmt.Sprintf("BK-%d", event.ID),
	})
}

// NotifyPayment is the webhook-style endpoint: it announces a payment to
// the admins room without recording a payment row.
func NotifyPayment(c *gin.Context) {
	var req struct {
		InvoiceID  string   `json:"invoiceId"`
		Amount     *float64 `json:"amount"`
		ClientName string   `json:"clientName"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.InvoiceID == "" || req.Amount == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invoiceId and amount are required"})
		return
	}

	if Notifier != nil {
		Notifier.Publish(models.NotificationPaymentReceived, "paymentReceived", gin.H{
			"invoice":    req.InvoiceID,
			"clientName": req.ClientName,
			"amount":     *req.Amount,
			"timestamp":  time.Now().UTC(),
		}, nil)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment notification sent"})
}

// ListPaymentsByEvent returns the payments for one event, newest first.
func ListPaymentsByEvent(c *gin.Context) {
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return
	}

	var payments []models.Payment
	if err := database.DB.
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(payments) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No payments found for this event"})
		return
	}

	c.JSON(http.StatusOK, payments)
}
