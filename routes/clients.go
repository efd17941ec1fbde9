package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studio-booking-server/database"
	"studio-booking-server/models"
)

// GetAllClients returns every client, newest first.
func GetAllClients(c *gin.Context) {
	var clients []models.Client
	if err := database.DB.Order("created_at DESC").Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// CreateClient adds a client manually and announces it to the admins
// room as a NEW_CLIENT notification.
func CreateClient(c *gin.Context) {
	var req struct {
		Name    string  `json:"name"`
		Phone   string  `json:"phone"`
		Email   *string `json:"email"`
		Address *string `json:"address"`
		Notes   *string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and phone are required"})
		return
	}

	client := models.Client{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Notes:   req.Notes,
	}

	if err := database.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if Notifier != nil {
		Notifier.Publish(models.NotificationNewClient, "newClient", gin.H{
			"clientId":  client.ID,
			"name":      client.Name,
			"phone":     client.Phone,
			"timestamp": time.Now().UTC(),
		}, nil)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Client created successfully",
		"client":  client,
	})
}

// UpdateClient applies a partial update to a client's contact details.
func UpdateClient(c *gin.Context) {
	clientID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name    *string `json:"name"`
		Phone   *string `json:"phone"`
		Email   *string `json:"email"`
		Address *string `json:"address"`
		Notes   *string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields provided for update"})
		return
	}

	result := database.DB.Model(&models.Client{}).Where("id = ?", clientID).Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Client updated successfully",
		"clientId": clientID,
	})
}
