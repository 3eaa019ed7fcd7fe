package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techguardpro/techguard-api/config"
	"github.com/techguardpro/techguard-api/models"
	"github.com/techguardpro/techguard-api/services"
)

// GetDashboard handles GET /api/v1/dashboard - the operational panel numbers:
// active orders, orders in repair, critical deadlines, estimated revenue,
// offline devices, and the ready-for-pickup list. Everything is derived from
// the current store on each call.
func GetDashboard(c *gin.Context) {
	db := config.GetDB()

	var orders []models.ServiceOrder
	if err := db.Order("id DESC").Find(&orders).Error; err != nil {
		respondDatabaseError(c, "Failed to list service orders")
		return
	}

	var devices []models.Device
	if err := db.Find(&devices).Error; err != nil {
		respondDatabaseError(c, "Failed to list devices")
		return
	}

	today := services.Today()

	var active, inRepair, offline int
	var revenue float64
	ready := make([]models.ServiceOrder, 0)
	for _, order := range orders {
		if order.Status != models.OSStatusEntregue && order.Status != models.OSStatusCancelado {
			active++
		}
		if order.Status == models.OSStatusEmAnalise {
			inRepair++
		}
		if order.Status == models.OSStatusPronto {
			ready = append(ready, order)
		}
		if order.EstimatedCost != nil {
			revenue += *order.EstimatedCost
		}
	}
	for _, device := range devices {
		if device.Status == models.DeviceStatusOffline {
			offline++
		}
	}

	alerts := services.FilterAlertWorthy(orders, today)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"active_orders":      active,
			"in_repair":          inRepair,
			"critical_deadlines": len(alerts),
			"estimated_revenue":  revenue,
			"offline_devices":    offline,
			"ready_orders":       ready,
		},
	})
}
