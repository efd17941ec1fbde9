package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-booking-server/database"
	"studio-booking-server/models"
)

// GetCategories lists the distinct gallery categories.
func GetCategories(c *gin.Context) {
	var categories []string
	if err := database.DB.Model(&models.Gallery{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetLabelsByCategory lists the gallery labels under one category.
func GetLabelsByCategory(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category is required"})
		return
	}

	var labels []models.Gallery
	if err := database.DB.
		Where("category = ?", category).
		Order("name ASC").
		Find(&labels).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, labels)
}
