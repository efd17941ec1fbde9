package routes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studio-booking-server/database"
	"studio-booking-server/models"
)

// GetNotifications returns recent notifications, newest first. The
// stored payload is decoded back into an object for the response.
func GetNotifications(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}

	var notifications []models.Notification
	if err := database.DB.
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(notifications))
	for _, n := range notifications {
		var payload interface{}
		if n.Payload != "" {
			if err := json.Unmarshal([]byte(n.Payload), &payload); err != nil {
				payload = nil
			}
		}
		out = append(out, gin.H{
			"id":         n.ID,
			"type":       n.Type,
			"payload":    payload,
			"is_read":    n.IsRead,
			"created_at": n.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, out)
}

// MarkNotificationRead flags a notification as read. Re-marking an
// already-read notification succeeds without change.
func MarkNotificationRead(c *gin.Context) {
	notificationID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var notification models.Notification
	if err := database.DB.First(&notification, notificationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	if !notification.IsRead {
		if err := database.DB.Model(&notification).Update("is_read", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	if Notifier != nil {
		Notifier.Emit("notificationRead", gin.H{"id": notificationID})
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notification marked as read",
		"id":      notificationID,
	})
}
