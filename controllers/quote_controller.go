package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techguardpro/techguard-api/config"
	"github.com/techguardpro/techguard-api/middleware"
	"github.com/techguardpro/techguard-api/models"
	"github.com/techguardpro/techguard-api/services"
	"github.com/techguardpro/techguard-api/utils"
	"gorm.io/gorm"
)

// QuoteItemRequest is one proposed line of a new quote
type QuoteItemRequest struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// CreateQuoteRequest represents the request body for saving a quote
type CreateQuoteRequest struct {
	ClientName  string             `json:"client_name"`
	ClientPhone string             `json:"client_phone"`
	Date        string             `json:"date"`
	ValidUntil  string             `json:"valid_until"`
	Items       []QuoteItemRequest `json:"items"`
}

// UpdateQuoteStatusRequest represents the request body for a quote status change
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateQuote handles POST /api/v1/quotes - materializes a proposal from its
// draft. Invalid item lines are dropped exactly as the proposal form drops
// them; a draft without a client or without any accepted item is rejected
// whole and nothing is saved.
func CreateQuote(c *gin.Context) {
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

	var req CreateQuoteRequest
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

	// Accumulate the draft; AddItem silently skips incomplete lines
	draft := services.QuoteDraft{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		Date:        req.Date,
		ValidUntil:  req.ValidUntil,
	}
	for _, item := range req.Items {
		draft.AddItem(item.Description, item.Quantity, item.UnitPrice)
	}

	db := config.GetDB()
	quote, err := buildWithFreshCode(db, &draft, user.Name)
	if err != nil {
		if errors.Is(err, services.ErrQuoteNoClient) || errors.Is(err, services.ErrQuoteNoItems) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "A quote needs a client name and at least one valid item",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to save quote",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    quote,
	})
}

// buildWithFreshCode builds the quote under an unused ORC-#### code and saves it.
func buildWithFreshCode(db *gorm.DB, draft *services.QuoteDraft, technician string) (models.Quote, error) {
	var lastErr error
	for i := 0; i < codeGenerationAttempts; i++ {
		code := utils.GenerateCode(utils.QuoteCodePrefix)

		var existing int64
		if err := db.Model(&models.Quote{}).Where("code = ?", code).Count(&existing).Error; err != nil {
			return models.Quote{}, err
		}
		if existing > 0 {
			continue
		}

		quote, err := draft.Build(code, technician)
		if err != nil {
			return models.Quote{}, err
		}
		if lastErr = db.Create(&quote).Error; lastErr == nil {
			return quote, nil
		}
	}
	if lastErr == nil {
		lastErr = gorm.ErrDuplicatedKey
	}
	return models.Quote{}, lastErr
}

// ListQuotes handles GET /api/v1/quotes - all quotes, newest first
func ListQuotes(c *gin.Context) {
	db := config.GetDB()

	var quotes []models.Quote
	if err := db.Preload("Items").Order("id DESC").Find(&quotes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to list quotes",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    quotes,
	})
}

// UpdateQuoteStatus handles PATCH /api/v1/quotes/:id/status. The stored total
// is untouched: it is the snapshot taken at save time.
func UpdateQuoteStatus(c *gin.Context) {
	var req UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.IsValidQuoteStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Status must be Aberto, Aprovado or Recusado",
			},
		})
		return
	}

	db := config.GetDB()
	var quote models.Quote
	if err := db.Preload("Items").Where("code = ?", c.Param("id")).First(&quote).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "QUOTE_NOT_FOUND",
				"message": "Quote not found",
			},
		})
		return
	}

	quote.Status = req.Status
	if err := db.Save(&quote).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update quote",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    quote,
	})
}

// DeleteQuote handles DELETE /api/v1/quotes/:id with the same confirmation
// guard as order deletion.
func DeleteQuote(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CONFIRMATION_REQUIRED",
				"message": "Deleting a quote requires confirm=true",
			},
		})
		return
	}

	db := config.GetDB()
	var quote models.Quote
	if err := db.Where("code = ?", c.Param("id")).First(&quote).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "QUOTE_NOT_FOUND",
				"message": "Quote not found",
			},
		})
		return
	}

	if err := db.Delete(&quote).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete quote",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Quote deleted",
	})
}
