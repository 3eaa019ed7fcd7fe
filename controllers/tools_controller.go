package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techguardpro/techguard-api/services"
)

// StorageEstimateRequest represents the request body for the HDD calculator
type StorageEstimateRequest struct {
	Channels     int `json:"channels" binding:"required"`
	ResolutionMP int `json:"resolution_mp" binding:"required"`
	Days         int `json:"days" binding:"required"`
	FPS          int `json:"fps" binding:"required"`
}

// EstimateStorage handles POST /api/v1/tools/storage - sizes the recorder
// disk for a CCTV installation.
func EstimateStorage(c *gin.Context) {
	var req StorageEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "channels, resolution_mp, days and fps are required",
			},
		})
		return
	}

	estimate, err := services.EstimateStorage(req.Channels, req.ResolutionMP, req.Days, req.FPS)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "All calculator parameters must be positive",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    estimate,
	})
}

// GetBandwidthTable handles GET /api/v1/tools/bandwidth - the fixed
// per-camera stream-rate reference table.
func GetBandwidthTable(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    services.BandwidthTable(),
	})
}
