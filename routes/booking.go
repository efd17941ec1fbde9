package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"studio-booking-server/database"
	"studio-booking-server/models"
)

// findOrCreateClient resolves a client by phone, creating one when the
// phone has never been seen. The lookup and insert are two round trips;
// two racing first-time bookings can create duplicate client rows,
// which the UI tolerates.
func findOrCreateClient(db *gorm.DB, name, phone string, email, address *string) (uint, bool, error) {
	var client models.Client
	err := db.Select("id").Where("phone = ?", phone).First(&client).Error
	if err == nil {
		return client.ID, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, false, err
	}

	client = models.Client{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
	}
	if err := db.Create(&client).Error; err != nil {
		return 0, false, err
	}
	return client.ID, true, nil
}

// CreateBooking handles the public enquiry form. A brand-new phone
// number also creates the client row; the event always starts at
// status NEW / stage ENQUIRY with source WEBSITE.
func CreateBooking(c *gin.Context) {
	var req struct {
		Name       string  `json:"name"`
		Phone      string  `json:"phone"`
		Email      *string `json:"email"`
		City       *string `json:"city"`
		EventType  string  `json:"event_type"`
		EventDate  string  `json:"event_date"`
		Time       *string `json:"time"`
		Location   *string `json:"location"`
		Venue      *string `json:"venue"`
		GuestCount *int    `json:"guest_count"`
		Message    *string `json:"message"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.Name == "" || req.Phone == "" || req.EventType == "" || req.EventDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, phone, event_type and event_date are required"})
		return
	}

	clientID, _, err := findOrCreateClient(database.DB, req.Name, req.Phone, req.Email, req.City)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	event := models.Event{
		ClientID:       clientID,
		EventType:      req.EventType,
		EventDate:      req.EventDate,
		StartTime:      req.Time,
		Location:       req.Location,
		Venue:          req.Venue,
		GuestCount:     req.GuestCount,
		EnquiryMessage: req.Message,
		Source:         models.EventSourceWebsite,
		Status:         models.EventStatusNew,
		Stage:          models.EventStageEnquiry,
	}

	if err := database.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if Notifier != nil {
		Notifier.Publish(models.NotificationNewBooking, "newBooking", gin.H{
			"eventId":    event.ID,
			"clientName": req.Name,
			"eventType":  req.EventType,
			"eventDate":  req.EventDate,
			"phone":      req.Phone,
			"timestamp":  time.Now().UTC(),
		}, nil)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking enquiry submitted successfully",
		"eventId": event.ID,
	})
}
