package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-booking-server/database"
	"studio-booking-server/models"
)

// GetAllStaff returns every staff member, newest first.
func GetAllStaff(c *gin.Context) {
	var staff []models.Staff
	if err := database.DB.Order("created_at DESC").Find(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, staff)
}

// CreateStaff adds a staff member. Only the name is mandatory.
func CreateStaff(c *gin.Context) {
	var req struct {
		Name   string  `json:"name"`
		Email  *string `json:"email"`
		Role   *string `json:"role"`
		Skills *string `json:"skills"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	staff := models.Staff{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Skills: req.Skills,
		Status: models.StaffStatusActive,
	}

	if err := database.DB.Create(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Staff created successfully",
		"staff":   staff,
	})
}

// UpdateStaff replaces the staff member's details. Unlike events this
// is a full update: the name must always be supplied.
func UpdateStaff(c *gin.Context) {
	staffID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name           string  `json:"name"`
		Email          *string `json:"email"`
		Role           *string `json:"role"`
		Skills         *string `json:"skills"`
		Status         *string `json:"status"`
		InactiveReason *string `json:"inactive_reason"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	if req.Status != nil && !models.IsValidStaffStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be ACTIVE, INACTIVE, or ON_LEAVE"})
		return
	}

	updates := map[string]interface{}{
		"name":   req.Name,
		"email":  req.Email,
		"role":   req.Role,
		"skills": req.Skills,
	}
	if req.Status != nil {
		updates["status"] = *req.Status
		if *req.Status == string(models.StaffStatusActive) {
			updates["inactive_reason"] = nil
		} else {
			updates["inactive_reason"] = req.InactiveReason
		}
	}

	result := database.DB.Model(&models.Staff{}).Where("id = ?", staffID).Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Staff updated successfully",
		"staffId": staffID,
	})
}

// ChangeStaffStatus flips a staff member's availability.
func ChangeStaffStatus(c *gin.Context) {
	staffID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status         string  `json:"status"`
		InactiveReason *string `json:"inactive_reason"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || !models.IsValidStaffStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be ACTIVE, INACTIVE, or ON_LEAVE"})
		return
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.Status == string(models.StaffStatusActive) {
		updates["inactive_reason"] = nil
	} else {
		updates["inactive_reason"] = req.InactiveReason
	}

	result := database.DB.Model(&models.Staff{}).Where("id = ?", staffID).Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Staff status updated",
		"staffId": staffID,
		"status":  req.Status,
	})
}
