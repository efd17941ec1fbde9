package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studio-booking-server/database"
	"studio-booking-server/models"
)

// GetAllEvents returns every event with its client, assigned staff and
// cancellation reason, newest event date first.
func GetAllEvents(c *gin.Context) {
	var events []models.Event
	if err := database.DB.
		Preload("Client").
		Preload("Staff.Staff").
		Preload("Cancellations").
		Order("event_date DESC, created_at DESC").
		Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(events))
	for _, e := range events {
		staff := make([]gin.H, 0, len(e.Staff))
		for _, a := range e.Staff {
			staff = append(staff, gin.H{
				"id":       a.StaffID,
				"name":     a.Staff.Name,
				"role":     a.Role,
				"attended": a.Attended,
			})
		}

		var cancellationReason *string
		if len(e.Cancellations) > 0 {
			cancellationReason = e.Cancellations[0].Reason
		}

		out = append(out, gin.H{
			"event_id":           e.ID,
			"eventType":          e.EventType,
			"eventDate":          e.EventDate,
			"startTime":          e.StartTime,
			"endTime":            e.EndTime,
			"location":           e.Location,
			"venue":              e.Venue,
			"guestCount":         e.GuestCount,
			"enquiryMessage":     e.EnquiryMessage,
			"status":             e.Status,
			"eventStage":         e.Stage,
			"source":             e.Source,
			"amount":             e.Amount,
			"paid_amount":        e.PaidAmount,
			"amount_status":      e.AmountStatus,
			"createdAt":          e.CreatedAt,
			"cancellationReason": cancellationReason,
			"client": gin.H{
				"id":        e.Client.ID,
				"name":      e.Client.Name,
				"phone":     e.Client.Phone,
				"email":     e.Client.Email,
				"address":   e.Client.Address,
				"createdAt": e.Client.CreatedAt,
			},
			"staff": staff,
		})
	}

	c.JSON(http.StatusOK, out)
}

// CreateEvent handles manual (offline) event creation by an admin.
func CreateEvent(c *gin.Context) {
	var req struct {
		ClientName  string  `json:"client_name"`
		ClientPhone string  `json:"client_phone"`
		ClientEmail *string `json:"client_email"`
		EventType   string  `json:"event_type"`
		EventDate   string  `json:"event_date"`
		StartTime   *string `json:"start_time"`
		EndTime     *string `json:"end_time"`
		Location    *string `json:"location"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.ClientName == "" || req.ClientPhone == "" || req.EventType == "" || req.EventDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_name, client_phone, event_type, event_date are required"})
		return
	}

	clientID, _, err := findOrCreateClient(database.DB, req.ClientName, req.ClientPhone, req.ClientEmail, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	event := models.Event{
		ClientID:  clientID,
		EventType: req.EventType,
		EventDate: req.EventDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
		Source:    models.EventSourceManual,
		Status:    models.EventStatusNew,
		Stage:     models.EventStageEnquiry,
	}

	if err := database.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"event":   event,
	})
}

// UpdateEvent applies a partial update: only supplied fields are
// written, never a raw SQL string built per request.
func UpdateEvent(c *gin.Context) {
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return
	}

	var req struct {
		EventType *string  `json:"event_type"`
		EventDate *string  `json:"event_date"`
		StartTime *string  `json:"start_time"`
		EndTime   *string  `json:"end_time"`
		Location  *string  `json:"location"`
		Venue     *string  `json:"venue"`
		Status    *string  `json:"status"`
		Stage     *string  `json:"stage"`
		Amount    *float64 `json:"amount"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updates := map[string]interface{}{}
	if req.EventType != nil {
		updates["event_type"] = *req.EventType
	}
	if req.EventDate != nil {
		updates["event_date"] = *req.EventDate
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Venue != nil {
		updates["venue"] = *req.Venue
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Stage != nil {
		updates["stage"] = *req.Stage
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields provided for update"})
		return
	}

	result := database.DB.Model(&models.Event{}).Where("id = ?", eventID).Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Event updated successfully",
		"eventId":       eventID,
		"updatedFields": updates,
	})
}

// UpdateAmount sets the quoted total for an event.
func UpdateAmount(c *gin.Context) {
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return
	}

	var req struct {
		Amount *float64 `json:"amount"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Amount == nil || *req.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	result := database.DB.Model(&models.Event{}).Where("id = ?", eventID).Update("amount", *req.Amount)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Amount updated successfully",
		"eventId": eventID,
		"amount":  *req.Amount,
	})
}

// AssignStaff assigns a batch of staff to an event. The whole batch is
// rejected when any id is missing or not ACTIVE; re-assigning an
// already-assigned pair is a no-op.
func AssignStaff(c *gin.Context) {
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return
	}

	var req struct {
		StaffIDs []uint            `json:"staffIds"`
		Roles    map[string]string `json:"roles"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || len(req.StaffIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "staffIds must be a non-empty array"})
		return
	}

	var event models.Event
	if err := database.DB.Select("id", "status").First(&event, eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	// Completed events are frozen for any staffing change.
	if event.IsCompleted() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot assign staff to a completed event"})
		return
	}

	var activeCount int64
	if err := database.DB.Model(&models.Staff{}).
		Where("id IN ? AND status = ?", req.StaffIDs, models.StaffStatusActive).
		Count(&activeCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if int(activeCount) != len(req.StaffIDs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "One or more staff are not ACTIVE or do not exist"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, staffID := range req.StaffIDs {
			assignment := models.EventStaffAssignment{
				EventID: eventID,
				StaffID: staffID,
			}
			if role, ok := req.Roles[formatUint(staffID)]; ok && role != "" {
				assignment.Role = &role
			}

			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "event_id"}, {Name: "staff_id"}},
				DoNothing: true,
			}).Create(&assignment).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Staff assigned successfully",
		"eventId":  eventID,
		"staffIds": req.StaffIDs,
	})
}

// UpdateEventStaff updates role and/or attendance of an assignment.
func UpdateEventStaff(c *gin.Context) {
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return
	}
	staffID, ok := parseID(c, "staffId")
	if !ok {
		return
	}

	var req struct {
		Role     *string `json:"role"`
		Attended *int    `json:"attended"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.Role == nil && req.Attended == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field (role, attended) must be provided for update."})
		return
	}

	updates := map[string]interface{}{}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Attended != nil {
		if *req.Attended != 0 && *req.Attended != 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": `The "attended" field must be 0 or 1.`})
			return
		}
		updates["attended"] = *req.Attended
	}

	result := database.DB.Model(&models.EventStaffAssignment{}).
		Where("event_id = ? AND staff_id = ?", eventID, staffID).
		Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff assignment for this event not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event staff details updated successfully.",
		"eventId": eventID,
		"staffId": staffID,
	})
}

// RemoveEventStaff deletes a staff assignment pairing.
func RemoveEventStaff(c *gin.Context) {
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return
	}
	staffID, ok := parseID(c, "staffId")
	if !ok {
		return
	}

	result := database.DB.Where("event_id = ? AND staff_id = ?", eventID, staffID).
		Delete(&models.EventStaffAssignment{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff assignment not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Staff removed from event",
		"eventId": eventID,
		"staffId": staffID,
	})
}

// CancelEvent marks the event CANCELLED and appends an immutable audit
// row recording who cancelled it and why.
func CancelEvent(c *gin.Context) {
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return
	}

	var req struct {
		Reason *string `json:"reason"`
	}
	// Reason is optional; an empty body is fine.
	_ = c.ShouldBindJSON(&req)

	var event models.Event
	if err := database.DB.Select("id", "status").First(&event, eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if err := database.DB.Model(&event).Update("status", models.EventStatusCancelled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event: " + err.Error()})
		return
	}

	var adminID *uint
	var adminEmail *string
	if id := c.GetUint("user_id"); id != 0 {
		adminID = &id
	}
	if email := c.GetString("user_email"); email != "" {
		adminEmail = &email
	}

	cancellation := models.EventCancellation{
		EventID:    eventID,
		AdminID:    adminID,
		AdminEmail: adminEmail,
		Reason:     req.Reason,
	}

	if err := database.DB.Create(&cancellation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cancellation reason: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Event cancelled",
		"eventId":     eventID,
		"cancelledBy": adminEmail,
	})
}
