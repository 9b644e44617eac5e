package controllers

import (
	"conference-management-api/config"
	"conference-management-api/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetConferences returns all conferences. Public reference data.
func GetConferences(c *gin.Context) {
	var conferences []models.Conference
	if err := config.DB.Where("delete_at IS NULL").Find(&conferences).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"conferences": conferences,
		"total":       len(conferences),
	})
}

// GetSchedule returns a conference agenda ordered by start time.
func GetSchedule(c *gin.Context) {
	conferenceID := c.Param("id")

	var items []models.ScheduleItem
	if err := config.DB.Where("conference_id = ?", conferenceID).
		Order("start_time").
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schedule": items,
		"total":    len(items),
	})
}
