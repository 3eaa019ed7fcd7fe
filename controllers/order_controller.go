package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techguardpro/techguard-api/config"
	"github.com/techguardpro/techguard-api/middleware"
	"github.com/techguardpro/techguard-api/models"
	"github.com/techguardpro/techguard-api/services"
	"github.com/techguardpro/techguard-api/utils"
	"gorm.io/gorm"
)

// codeGenerationAttempts bounds the redraws when a generated document code
// collides with an existing one. The 4-digit space makes collisions likely
// over time, so codes are redrawn instead of failing the create.
const codeGenerationAttempts = 50

// CreateOrderRequest represents the request body for opening a service order
type CreateOrderRequest struct {
	ClientName            string   `json:"client_name" binding:"required"`
	ClientPhone           string   `json:"client_phone"`
	ClientAddress         *string  `json:"client_address"`
	DeviceModel           string   `json:"device_model" binding:"required"`
	IssueDescription      string   `json:"issue_description"`
	EntryDate             string   `json:"entry_date"`
	EstimatedDeliveryDate *string  `json:"estimated_delivery_date"`
	Status                string   `json:"status"`
	Priority              string   `json:"priority"`
	EstimatedCost         *float64 `json:"estimated_cost"`
}

// UpdateOrderStatusRequest represents the request body for a status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateOrder handles POST /api/v1/orders - opens a new service order
func CreateOrder(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not extract user information",
			},
		})
		return
	}

	// Required-field guard: without client name and device model the order
	// is not created and nothing changes
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	// Apply creation defaults
	if req.Status == "" {
		req.Status = models.OSStatusPendente
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedia
	}
	if req.EntryDate == "" {
		req.EntryDate = services.Today()
	}

	if !models.IsValidOSStatus(req.Status) || !models.IsValidPriority(req.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Unknown status or priority",
			},
		})
		return
	}

	if req.EstimatedCost != nil && *req.EstimatedCost < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Estimated cost must not be negative",
			},
		})
		return
	}

	db := config.GetDB()
	order := models.ServiceOrder{
		ClientName:            req.ClientName,
		ClientPhone:           req.ClientPhone,
		ClientAddress:         req.ClientAddress,
		DeviceModel:           req.DeviceModel,
		IssueDescription:      req.IssueDescription,
		EntryDate:             req.EntryDate,
		EstimatedDeliveryDate: req.EstimatedDeliveryDate,
		Status:                req.Status,
		Priority:              req.Priority,
		EstimatedCost:         req.EstimatedCost,
		Technician:            user.Name,
	}

	// Draw the OS-#### code, redrawing on collision to keep codes unique
	// within the store
	if err := createWithFreshCode(db, &order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create service order",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// createWithFreshCode assigns a fresh unused OS-#### code and inserts the order.
func createWithFreshCode(db *gorm.DB, order *models.ServiceOrder) error {
	var lastErr error
	for i := 0; i < codeGenerationAttempts; i++ {
		order.Code = utils.GenerateCode(utils.OrderCodePrefix)

		var existing int64
		if err := db.Model(&models.ServiceOrder{}).Where("code = ?", order.Code).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			continue
		}

		if lastErr = db.Create(order).Error; lastErr == nil {
			return nil
		}
	}
	if lastErr == nil {
		lastErr = gorm.ErrDuplicatedKey
	}
	return lastErr
}

// ListOrders handles GET /api/v1/orders - all orders, newest first
func ListOrders(c *gin.Context) {
	db := config.GetDB()

	var orders []models.ServiceOrder
	if err := db.Order("id DESC").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to list service orders",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

// GetOrder handles GET /api/v1/orders/:id - fetches one order by its OS code
func GetOrder(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - replaces the
// status field. Any enum member is settable from any other; there is no
// transition graph and the write is idempotent.
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Status is required",
			},
		})
		return
	}

	if !models.IsValidOSStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Unknown status",
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

	order.Status = req.Status
	if err := db.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update status",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes one order. The
// destructive-action guard requires confirm=true; without it nothing is
// deleted and the cancel path is a no-op.
func DeleteOrder(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CONFIRMATION_REQUIRED",
				"message": "Deleting a service order requires confirm=true",
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

	if err := db.Delete(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete service order",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service order deleted",
	})
}

// GetOrderAlerts handles GET /api/v1/orders/alerts - the deadline-critical
// orders for the given day (default: today). The set is re-derived on every
// call; "today" moves, so nothing is cached.
func GetOrderAlerts(c *gin.Context) {
	today := c.Query("date")
	if today == "" {
		today = services.Today()
	}

	db := config.GetDB()
	var orders []models.ServiceOrder
	if err := db.Order("id DESC").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to list service orders",
			},
		})
		return
	}

	alerts := services.FilterAlertWorthy(orders, today)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"date":   today,
			"count":  len(alerts),
			"orders": alerts,
		},
	})
}
