package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techguardpro/techguard-api/config"
	"github.com/techguardpro/techguard-api/models"
	"github.com/techguardpro/techguard-api/utils"
)

// PrintOrder handles GET /api/v1/orders/:id/print - renders the printable
// receipt for one order. The format query selects exactly one of the A4,
// 80mm, or 58mm layouts.
func PrintOrder(c *gin.Context) {
	format := c.DefaultQuery("format", utils.FormatA4)
	if !utils.IsValidPrintFormat(format) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_FORMAT",
				"message": "Print format must be A4, 80mm or 58mm",
			},
		})
		return
	}

	db := config.GetDB()
	var order models.ServiceOrder
	if err := db.Where("code = ?", c.Param("id")).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Service order not found",
			},
		})
		return
	}

	document, err := utils.BuildOrderReceipt(order, format)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RENDER_ERROR",
				"message": "Failed to render receipt",
			},
		})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(document))
}
