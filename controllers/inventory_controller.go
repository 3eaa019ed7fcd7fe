package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techguardpro/techguard-api/config"
	"github.com/techguardpro/techguard-api/models"
)

// ListDevices handles GET /api/v1/devices - the monitored device inventory.
// The inventory is seeded sample data; there are no mutation endpoints.
func ListDevices(c *gin.Context) {
	db := config.GetDB()

	var devices []models.Device
	if err := db.Order("id").Find(&devices).Error; err != nil {
		respondDatabaseError(c, "Failed to list devices")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    devices,
	})
}

// ListMaintenanceLogs handles GET /api/v1/logs - the maintenance history,
// most recent interventions first.
func ListMaintenanceLogs(c *gin.Context) {
	db := config.GetDB()

	query := db.Model(&models.MaintenanceLog{})
	if deviceID := c.Query("device_id"); deviceID != "" {
		query = query.Where("device_id = ?", deviceID)
	}

	var logs []models.MaintenanceLog
	if err := query.Order("date DESC").Find(&logs).Error; err != nil {
		respondDatabaseError(c, "Failed to list maintenance logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    logs,
	})
}
